package catalog

// FilterAll is the facet value meaning "no constraint".
const FilterAll = "all"

// CategoryGroup is one top-level catalog section with its subcategories.
type CategoryGroup struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// Categories is the storefront navigation tree, keyed by gender.
var Categories = map[string]CategoryGroup{
	"women": {
		Name:          "Women",
		Subcategories: []string{"sarees", "lehengas", "churidars", "salwars"},
	},
	"men": {
		Name:          "Men",
		Subcategories: []string{"kurtas", "sherwanis", "dhotis", "nehru-jackets"},
	},
}

// Facet vocabularies, each led by the "all" sentinel.
var (
	Fabrics   = []string{FilterAll, "silk", "cotton", "georgette", "velvet", "chiffon"}
	Colors    = []string{FilterAll, "burgundy", "gold", "green", "blue", "pink", "white", "black"}
	Occasions = []string{FilterAll, "wedding", "festive", "party", "casual", "formal"}
)

// PriceRange is one labelled price band offered by the filtering UI.
type PriceRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var PriceRanges = []PriceRange{
	{Label: "Under ₹2,000", Min: 0, Max: 2000},
	{Label: "₹2,000 - ₹5,000", Min: 2000, Max: 5000},
	{Label: "₹5,000 - ₹10,000", Min: 5000, Max: 10000},
	{Label: "Above ₹10,000", Min: 10000, Max: 100000},
}
