package models

// Flat view records produced by the normalizer. Every field is total: missing
// or malformed upstream data resolves to the documented fallback, never an error.

type UserRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Status     string `json:"status"`
	Registered string `json:"registered"`
	Avatar     string `json:"avatar"`
	Location   string `json:"location"`
	AdsPosted  int    `json:"ads_posted"`
	Rating     int    `json:"rating"`
}

type SellerInfo struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type AdRecord struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	CategoryID string     `json:"category_id"`
	Location   string     `json:"location"`
	Seller     SellerInfo `json:"seller"`
	Price      string     `json:"price"`
	// PriceAmount keeps the raw value for revenue aggregation; zero means the
	// upstream record carried no price.
	PriceAmount float64 `json:"price_amount"`
	Status      string  `json:"status"`
	Engagement  int     `json:"engagement"`
	IsPaid      bool    `json:"is_paid"`
	ImageURL    string  `json:"image_url"`
	StartDate   string  `json:"start_date"`
	Flags       int     `json:"flags"`
}

type SubcategoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryRecord struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Icon          string              `json:"icon"`
	AdCount       int                 `json:"ad_count"`
	Subcategories []SubcategoryRecord `json:"subcategories"`
}

type PaymentUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TransactionID struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

type PaymentRecord struct {
	ID            string        `json:"id"`
	User          PaymentUser   `json:"user"`
	Package       string        `json:"package"`
	Amount        float64       `json:"amount"`
	AmountDisplay string        `json:"amount_display"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	TransactionID TransactionID `json:"transaction_id"`
	Method        string        `json:"method"`
}

type OrderRecord struct {
	ID            string      `json:"id"`
	User          PaymentUser `json:"user"`
	Package       string      `json:"package"`
	Amount        float64     `json:"amount"`
	AmountDisplay string      `json:"amount_display"`
	Status        string      `json:"status"`
	Date          string      `json:"date"`
}

type PackageRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationDay int     `json:"duration_days"`
	AdLimit     int     `json:"ad_limit"`
	IsFeatured  bool    `json:"is_featured"`
	Subscribers int     `json:"subscribers"`
}

type TicketRecord struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Requester string `json:"requester"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	Assignee  string `json:"assignee"`
}

type NotificationView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

type LocationRecord struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	State    string `json:"state"`
	AdCount  int    `json:"ad_count"`
	IsActive bool   `json:"is_active"`
}

// ChartPoint is a generic label/value pair for fixture-backed dashboard charts.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type DashboardCharts struct {
	TrafficSources []ChartPoint `json:"traffic_sources"`
	Income         []ChartPoint `json:"income"`
}
