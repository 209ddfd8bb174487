package request

import (
	"strings"

	"counter_billing/internal/domain/entities"
)

type AddBillLineRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Tier   string `json:"tier" binding:"required"`
}

func (r AddBillLineRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

// ResolveTier accepts the tier case-insensitively.
func (r AddBillLineRequest) ResolveTier() entities.Tier {
	return entities.Tier(strings.ToLower(strings.TrimSpace(r.Tier)))
}
