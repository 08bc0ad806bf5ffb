package normalize

import "admin/internal/models"

// Order shares the payment status table; orders and payments are the same
// lifecycle seen from two backend endpoints.
func Order(o models.UpstreamOrder) models.OrderRecord {
	status, ok := paymentStatusLabels[o.Status]
	if !ok {
		status = defaultPaymentStatus
	}

	user := models.PaymentUser{Name: UnknownUser}
	if o.User != nil {
		user = models.PaymentUser{
			Name:  fullName(o.User.FirstName, o.User.LastName, UnknownUser),
			Email: o.User.Email,
		}
	}

	return models.OrderRecord{
		ID:            o.ID,
		User:          user,
		Package:       o.Package,
		Amount:        o.Amount,
		AmountDisplay: displayPrice(o.Amount),
		Status:        status,
		Date:          datePart(o.CreatedAt),
	}
}

func Orders(orders []models.UpstreamOrder) []models.OrderRecord {
	records := make([]models.OrderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, Order(o))
	}
	return records
}
