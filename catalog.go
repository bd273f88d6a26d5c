package inventory

import "github.com/google/uuid"

// Category is a name grouping for items. Immutable once created.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a product in the catalog. MinStock is the low-stock threshold used
// by reporting; Unit is a free-form display unit ("pkts", "bags", ...).
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	MinStock   Quantity `json:"minStock"`
	Unit       string   `json:"unit"`
}

// unknownName is displayed wherever an id points at a missing catalog record.
const unknownName = "Unknown"

// Item returns the item with this id, or nil if unknown.
func (s *Snapshot) Item(id string) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// Category returns the category with this id, or nil if unknown.
func (s *Snapshot) Category(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// ItemName resolves an item id for display. Dangling references degrade to
// "Unknown" rather than failing.
func (s *Snapshot) ItemName(id string) string {
	if item := s.Item(id); item != nil {
		return item.Name
	}
	return unknownName
}

// CategoryName resolves a category id for display, degrading to "Unknown".
func (s *Snapshot) CategoryName(id string) string {
	if c := s.Category(id); c != nil {
		return c.Name
	}
	return unknownName
}

// AddItem appends a new item to the catalog with a generated id.
// Duplicate names are permitted. A dangling category reference is accepted
// and degrades at display time.
func (s *Snapshot) AddItem(name, categoryID string, minStock Quantity, unit string) (Item, error) {
	if name == "" {
		return Item{}, &ValidationError{Field: "name", Reason: "item name is required"}
	}
	if minStock.IsNegative() {
		return Item{}, &ValidationError{Field: "minStock", Reason: "minimum stock cannot be negative"}
	}
	item := Item{
		ID:         uuid.NewString(),
		Name:       name,
		CategoryID: categoryID,
		MinStock:   minStock,
		Unit:       unit,
	}
	s.Items = append(s.Items, item)
	return item, nil
}

// AddCategory appends a new category with a generated id. Duplicate names are
// permitted.
func (s *Snapshot) AddCategory(name string) (Category, error) {
	if name == "" {
		return Category{}, &ValidationError{Field: "name", Reason: "category name is required"}
	}
	c := Category{ID: uuid.NewString(), Name: name}
	s.Categories = append(s.Categories, c)
	return c, nil
}
