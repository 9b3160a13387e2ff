package models

// Product is a catalog entry. Optional text columns are nullable in the
// store, so they stay pointers and encode as JSON null when absent.
type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id" yaml:"id"`
	Name        string  `gorm:"not null" json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
	Ingredients *string `json:"ingredients" yaml:"ingredients"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url" yaml:"image_url"`
}

// Text returns the value of an optional column, or "" when it is null.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr is a helper for building products with optional fields.
func StringPtr(s string) *string {
	return &s
}
