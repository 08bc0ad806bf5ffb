package normalize

import "admin/internal/models"

// paymentStatusLabels maps raw payment statuses to their display labels.
var paymentStatusLabels = map[string]string{
	"completed": "Completed",
	"failed":    "Failed",
	"pending":   "Pending",
}

const defaultPaymentStatus = "Pending"

// shortTransactionLength is how much of a transaction id the table shows.
const shortTransactionLength = 10

func Payment(p models.UpstreamPayment) models.PaymentRecord {
	status, ok := paymentStatusLabels[p.Status]
	if !ok {
		status = defaultPaymentStatus
	}

	short := p.TransactionID
	if len(short) > shortTransactionLength {
		short = short[:shortTransactionLength]
	}

	return models.PaymentRecord{
		ID: p.ID,
		User: models.PaymentUser{
			Name:  fullName(p.FirstName, p.LastName, UnknownUser),
			Email: p.Email,
		},
		Package:       p.Package,
		Amount:        p.Amount,
		AmountDisplay: displayPrice(p.Amount),
		Status:        status,
		Date:          datePart(p.CreatedAt),
		TransactionID: models.TransactionID{Short: short, Full: p.TransactionID},
		Method:        p.Method,
	}
}

func Payments(payments []models.UpstreamPayment) []models.PaymentRecord {
	records := make([]models.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, Payment(p))
	}
	return records
}
