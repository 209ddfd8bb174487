package entities

// Tier is the serving size selected for a bill line.
type Tier string

const (
	TierHalf Tier = "half"
	TierFull Tier = "full"
)

func (t Tier) Valid() bool {
	return t == TierHalf || t == TierFull
}

// BillLine is a snapshot of a FoodItem taken when it was added to a bill.
//
// Name and Price are copied, not referenced: deleting or re-adding the
// catalog item later never changes an existing line.
type BillLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  Tier    `json:"type"`
}

// BillHistory is a finalized bill.
//
// Storage model (key/value):
//   - key: billHistory
//   - value: every BillHistory, newest first
//
// Total is frozen at save time and equals the sum of Items[*].Price.
type BillHistory struct {
	ID    string     `json:"id"`
	Date  string     `json:"date"`
	Items []BillLine `json:"items"`
	Total float64    `json:"total"`
}

// SumLines adds up line prices. An empty slice sums to 0.
func SumLines(lines []BillLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Price
	}
	return total
}

// CopyLines returns an independent copy so callers cannot mutate a bill
// through a shared backing array.
func CopyLines(lines []BillLine) []BillLine {
	out := make([]BillLine, len(lines))
	copy(out, lines)
	return out
}

// Clone copies the bill including its line slice.
func (b BillHistory) Clone() BillHistory {
	b.Items = CopyLines(b.Items)
	return b
}
