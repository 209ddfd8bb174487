package entities

// FoodItem is a sellable menu entry.
//
// Items are immutable once created: the catalog only supports add and delete.
// ImageURL is decorative and is never dereferenced by the service.
type FoodItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	HalfPrice float64 `json:"halfPrice"`
	FullPrice float64 `json:"fullPrice"`
	ImageURL  string  `json:"imageUrl"`
}

// PriceFor resolves the item price for a serving tier.
func (f FoodItem) PriceFor(tier Tier) float64 {
	if tier == TierHalf {
		return f.HalfPrice
	}
	return f.FullPrice
}
