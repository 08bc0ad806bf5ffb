package normalize

import "admin/internal/models"

const (
	AdStatusActive   = "Active"
	AdStatusInactive = "Inactive"
)

func Product(p models.UpstreamProduct) models.AdRecord {
	category := UnknownLocation
	if p.Category != nil && p.Category.Name != "" {
		category = p.Category.Name
	}

	location := UnknownLocation
	sellerName := UnknownUser
	if p.Seller != nil {
		location = withDefault(p.Seller.Location, UnknownLocation)
		sellerName = fullName(p.Seller.FirstName, p.Seller.LastName, UnknownUser)
	}

	status := AdStatusInactive
	if p.IsActive {
		status = AdStatusActive
	}

	imageURL := ""
	if len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}

	return models.AdRecord{
		ID:          p.ID,
		Title:       p.Name,
		Category:    category,
		CategoryID:  p.CategoryID,
		Location:    location,
		Seller:      models.SellerInfo{Name: sellerName, Date: datePart(p.CreatedAt)},
		Price:       displayPrice(p.Price),
		PriceAmount: p.Price,
		Status:      status,
		Engagement:  p.ViewCount,
		IsPaid:      p.IsFeatured,
		ImageURL:    imageURL,
		StartDate:   datePart(p.CreatedAt),
		Flags:       p.Flags,
	}
}

func Products(products []models.UpstreamProduct) []models.AdRecord {
	records := make([]models.AdRecord, 0, len(products))
	for _, p := range products {
		records = append(records, Product(p))
	}
	return records
}
