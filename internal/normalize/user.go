package normalize

import "admin/internal/models"

// userStatusLabels maps the backend's lowercase enum to UI-facing labels.
// Unrecognized values fall back to "Active".
var userStatusLabels = map[string]string{
	"active":    "Active",
	"pending":   "Pending",
	"suspended": "Suspended",
}

const defaultUserStatus = "Active"

func User(u models.UpstreamUser) models.UserRecord {
	status, ok := userStatusLabels[u.Status]
	if !ok {
		status = defaultUserStatus
	}

	return models.UserRecord{
		ID:         u.ID,
		Name:       fullName(u.FirstName, u.LastName, UnknownUser),
		Email:      u.Email,
		Mobile:     u.Phone,
		Status:     status,
		Registered: datePart(u.CreatedAt),
		Avatar:     "",
		Location:   withDefault(u.Location, UnknownLocation),
		AdsPosted:  u.Count.Products,
		Rating:     0,
	}
}

func Users(users []models.UpstreamUser) []models.UserRecord {
	records := make([]models.UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, User(u))
	}
	return records
}
