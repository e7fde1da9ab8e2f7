package models

import "walletview/internal/theme"

// Category is the closed set of spending categories. Each variant carries a
// display icon identifier and a theme color; there is no runtime extension.
type Category string

const (
	CategoryGroceries      Category = "groceries"
	CategoryDining         Category = "dining"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryBills          Category = "bills"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryIncome         Category = "income"
	CategoryFees           Category = "fees"
	CategoryOther          Category = "other"
)

type categoryInfo struct {
	label string
	icon  string
	color theme.Color
}

var categoryDetails = map[Category]categoryInfo{
	CategoryGroceries:      {label: "Groceries", icon: "cart", color: theme.ColorGroceries},
	CategoryDining:         {label: "Dining", icon: "utensils", color: theme.ColorDining},
	CategoryTransportation: {label: "Transportation", icon: "bus", color: theme.ColorTransportation},
	CategoryEntertainment:  {label: "Entertainment", icon: "film", color: theme.ColorEntertainment},
	CategoryShopping:       {label: "Shopping", icon: "bag", color: theme.ColorShopping},
	CategoryBills:          {label: "Bills & Utilities", icon: "bolt", color: theme.ColorBills},
	CategoryHealthcare:     {label: "Healthcare", icon: "heart", color: theme.ColorHealthcare},
	CategoryEducation:      {label: "Education", icon: "book", color: theme.ColorEducation},
	CategoryTravel:         {label: "Travel", icon: "plane", color: theme.ColorTravel},
	CategoryIncome:         {label: "Income", icon: "banknote", color: theme.ColorIncome},
	CategoryFees:           {label: "Fees", icon: "receipt", color: theme.ColorFees},
	CategoryOther:          {label: "Other", icon: "dots", color: theme.ColorOther},
}

// AllCategories returns every category variant in display order.
func AllCategories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryIncome,
		CategoryFees,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is a registered variant.
func IsValidCategory(category string) bool {
	_, ok := categoryDetails[Category(category)]
	return ok
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	return c.info().label
}

// Icon returns the display icon identifier for the category.
func (c Category) Icon() string {
	return c.info().icon
}

// Color returns the theme color token for the category.
func (c Category) Color() theme.Color {
	return c.info().color
}

func (c Category) info() categoryInfo {
	if info, ok := categoryDetails[c]; ok {
		return info
	}
	return categoryDetails[CategoryOther]
}
