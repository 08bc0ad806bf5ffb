package models

// Envelope is the uniform response shape of the marketplace backend. Transport
// failures are folded into the same shape by the gateway, so callers only ever
// branch on Success.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// UpstreamCount mirrors the backend's `_count` relation aggregate.
type UpstreamCount struct {
	Products int `json:"products"`
}

type UpstreamUser struct {
	ID        string        `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Status    string        `json:"status"`
	Location  string        `json:"location"`
	CreatedAt string        `json:"createdAt"`
	Count     UpstreamCount `json:"_count"`
}

type UpstreamSeller struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Location  string `json:"location"`
}

type UpstreamCategoryRef struct {
	Name string `json:"name"`
}

type UpstreamImage struct {
	URL string `json:"url"`
}

type UpstreamProduct struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Price      float64              `json:"price"`
	IsActive   bool                 `json:"isActive"`
	IsFeatured bool                 `json:"isFeatured"`
	ViewCount  int                  `json:"viewCount"`
	Flags      int                  `json:"flags"`
	CreatedAt  string               `json:"createdAt"`
	CategoryID string               `json:"categoryId"`
	Category   *UpstreamCategoryRef `json:"category"`
	Seller     *UpstreamSeller      `json:"seller"`
	Images     []UpstreamImage      `json:"images"`
}

type UpstreamCategory struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Icon     string             `json:"icon"`
	Count    UpstreamCount      `json:"_count"`
	Children []UpstreamCategory `json:"children"`
}

// Data payloads of the list endpoints.

type UsersPage struct {
	Users []UpstreamUser `json:"users"`
}

type ProductsPage struct {
	Products []UpstreamProduct `json:"products"`
}

type CategoriesPage struct {
	Categories []UpstreamCategory `json:"categories"`
}

type UserPage struct {
	User UpstreamUser `json:"user"`
}

// UpstreamBuyer is the user relation embedded in order records.
type UpstreamBuyer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpstreamOrder is a package purchase order as delivered by the backend.
type UpstreamOrder struct {
	ID        string         `json:"id"`
	Package   string         `json:"package"`
	Amount    float64        `json:"amount"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"createdAt"`
	User      *UpstreamBuyer `json:"user"`
}

type OrdersPage struct {
	Orders []UpstreamOrder `json:"orders"`
}

type LoginData struct {
	Token string `json:"token"`
}

// DashboardStats is the backend's precomputed dashboard payload.
type DashboardStats struct {
	NewUsers       int     `json:"newUsers"`
	TotalUsers     int     `json:"totalUsers"`
	TotalProducts  int     `json:"totalProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PackagesSold   int     `json:"packagesSold"`
	PendingReports int     `json:"pendingReports"`
}

// Empty is the data payload of acknowledgement-only responses.
type Empty struct{}

// UpstreamPayment is the raw payment shape delivered by the fixture gateway,
// mirroring what the backend will eventually return.
type UpstreamPayment struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Package       string  `json:"package"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	TransactionID string  `json:"transactionId"`
	Method        string  `json:"method"`
}

// Bodies proxied to the backend.

type CategoryCreateBody struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	IsActive    bool    `json:"isActive"`
	SortOrder   int     `json:"sortOrder"`
	ParentID    *string `json:"parentId"`
	Metadata    any     `json:"metadata"`
}

type UserStatusBody struct {
	Status string `json:"status" validate:"required,oneof=active pending suspended"`
}

type UserVerificationBody struct {
	VerificationStatus string `json:"verificationStatus" validate:"required,max=50"`
}

type ProductStatusBody struct {
	IsActive bool `json:"isActive"`
}
