package domain

// City identifies one of the metro areas in the cost-of-living dataset.
type City string

const (
	LosAngeles    City = "Los Angeles"
	SanFrancisco  City = "San Francisco"
	Portland      City = "Portland"
	Seattle       City = "Seattle"
	Phoenix       City = "Phoenix"
	Denver        City = "Denver"
	Austin        City = "Austin"
	Dallas        City = "Dallas"
	Miami         City = "Miami"
	Pittsburgh    City = "Pittsburgh"
	Philadelphia  City = "Philadelphia"
	Boston        City = "Boston"
	NewYorkCity   City = "New York City"
	Atlanta       City = "Atlanta"
	Chicago       City = "Chicago"
	Houston       City = "Houston"
	SanDiego      City = "San Diego"
)

// State identifies a US state carrying its own income tax rule.
type State string

const (
	Pennsylvania  State = "Pennsylvania"
	California    State = "California"
	Illinois      State = "Illinois"
	Texas         State = "Texas"
	Arizona       State = "Arizona"
	Massachusetts State = "Massachusetts"
	Georgia       State = "Georgia"
	Oregon        State = "Oregon"
	Washington    State = "Washington"
	Colorado      State = "Colorado"
	Florida       State = "Florida"
	NewYork       State = "New York"
)

// Category classifies an expense line item for cost-of-living
// adjustment. Fixed is the passthrough pseudo-category: costs that do
// not vary by location (debt payments, subscriptions).
type Category string

const (
	Housing        Category = "Housing"
	Transportation Category = "Transportation"
	Grocery        Category = "Grocery"
	Utilities      Category = "Utilities"
	Healthcare     Category = "Healthcare"
	Miscellaneous  Category = "Miscellaneous"
	Fixed          Category = "Fixed"
)

// AdjustableCategories lists every category with a cost-of-living index
// (everything except Fixed).
var AdjustableCategories = []Category{
	Housing, Transportation, Grocery, Utilities, Healthcare, Miscellaneous,
}

// ValidCategory reports whether c is a known expense category.
func ValidCategory(c Category) bool {
	if c == Fixed {
		return true
	}
	for _, a := range AdjustableCategories {
		if c == a {
			return true
		}
	}
	return false
}
