package models

// Query parameters accepted by the list endpoints. Zero values mean
// "unfiltered"; page/limit fall back to the configured defaults.

type UserListQuery struct {
	Page   int    `json:"page"   validate:"omitempty,gte=1"`
	Limit  int    `json:"limit"  validate:"omitempty,gte=1,lte=1000"`
	Search string `json:"search" validate:"omitempty,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=active pending suspended"`
}

type ProductListQuery struct {
	Page     int    `json:"page"     validate:"omitempty,gte=1"`
	Limit    int    `json:"limit"    validate:"omitempty,gte=1,lte=1000"`
	Search   string `json:"search"   validate:"omitempty,max=200"`
	Status   string `json:"status"   validate:"omitempty,max=50"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

type OrderListQuery struct {
	Page   int    `json:"page"   validate:"omitempty,gte=1"`
	Limit  int    `json:"limit"  validate:"omitempty,gte=1,lte=1000"`
	Status string `json:"status" validate:"omitempty,oneof=pending completed failed"`
}
