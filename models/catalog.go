package models

import "strings"

// Category kinds accepted on create.
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
)

// CategoryIDFor maps a category kind to its fixed document id.
func CategoryIDFor(kind string) (string, bool) {
	switch kind {
	case CategoryMen:
		return "menservices", true
	case CategoryWomen:
		return "womenservices", true
	}
	return "", false
}

// Category is the top level of the catalog tree.
type Category struct {
	ID        string `bson:"id" json:"id"`
	Category  string `bson:"category" json:"category"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

// Service belongs to a category and embeds its sub-services.
type Service struct {
	ID          string       `bson:"id" json:"id"`
	CategoryID  string       `bson:"categoryId" json:"categoryId"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description" json:"description"`
	Icon        string       `bson:"icon" json:"icon"`
	IsActive    bool         `bson:"isActive" json:"isActive"`
	SubServices []SubService `bson:"subServices" json:"subServices"`
	CreatedAt   int64        `bson:"createdAt" json:"createdAt"`
}

// Sub-service pricing units.
const (
	UnitPerService = "per service"
	UnitPerUnit    = "per unit"
	UnitPerHour    = "per hour"
	UnitPerDay     = "per day"
)

// IsValidUnit reports whether unit is a known pricing unit.
func IsValidUnit(unit string) bool {
	switch unit {
	case UnitPerService, UnitPerUnit, UnitPerHour, UnitPerDay:
		return true
	}
	return false
}

// SubService is a priced line item inside a Service. Legacy entries have no ID.
type SubService struct {
	ID          string  `bson:"id,omitempty" json:"id,omitempty"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Unit        string  `bson:"unit" json:"unit"`
	MinPrice    float64 `bson:"minPrice" json:"minPrice"`
	MaxPrice    float64 `bson:"maxPrice" json:"maxPrice"`
}

// Identity is the lookup key: the id, or the name for legacy entries.
func (s SubService) Identity() string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name
}

// SameName compares sub-service names ignoring case and surrounding space.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
