package normalize

import "admin/internal/models"

const defaultCategoryIcon = "Folder"

// Category flattens one tree level: parent plus (id, name) children. Deeper
// nesting is not supported by the dashboard and is ignored.
func Category(c models.UpstreamCategory) models.CategoryRecord {
	subcategories := make([]models.SubcategoryRecord, 0, len(c.Children))
	for _, child := range c.Children {
		subcategories = append(subcategories, models.SubcategoryRecord{
			ID:   child.ID,
			Name: child.Name,
		})
	}

	return models.CategoryRecord{
		ID:            c.ID,
		Name:          c.Name,
		Icon:          withDefault(c.Icon, defaultCategoryIcon),
		AdCount:       c.Count.Products,
		Subcategories: subcategories,
	}
}

func Categories(categories []models.UpstreamCategory) []models.CategoryRecord {
	records := make([]models.CategoryRecord, 0, len(categories))
	for _, c := range categories {
		records = append(records, Category(c))
	}
	return records
}
