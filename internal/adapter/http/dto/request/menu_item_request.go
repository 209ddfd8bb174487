package request

import "strings"

// CreateMenuItemRequest is the payload of POST /menu/items.
//
// Prices are pointers so that an explicit 0 passes the required check while a
// missing field does not.
type CreateMenuItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	HalfPrice *float64 `json:"half_price" binding:"required,gte=0"`
	FullPrice *float64 `json:"full_price" binding:"required,gte=0"`
	ImageURL  string   `json:"image_url"`
}

func (r CreateMenuItemRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
