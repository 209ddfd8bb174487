package response

import "counter_billing/internal/domain/entities"

type MenuItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	HalfPrice float64 `json:"half_price"`
	FullPrice float64 `json:"full_price"`
	ImageURL  string  `json:"image_url"`
	Notice    string  `json:"notice,omitempty"`
}

func FromFoodItem(f entities.FoodItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        f.ID,
		Name:      f.Name,
		HalfPrice: f.HalfPrice,
		FullPrice: f.FullPrice,
		ImageURL:  f.ImageURL,
	}
}

func FromFoodItems(items []entities.FoodItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromFoodItem(it))
	}
	return out
}
