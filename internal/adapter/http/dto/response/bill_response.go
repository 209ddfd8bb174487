package response

import "counter_billing/internal/domain/entities"

type BillLineResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type CurrentBillResponse struct {
	Lines []BillLineResponse `json:"lines"`
	Total float64            `json:"total"`
}

type BillHistoryResponse struct {
	ID        string             `json:"id"`
	Date      string             `json:"date"`
	Items     []BillLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
	Notice    string             `json:"notice,omitempty"`
}

// DeleteResponse reports whether anything was removed. A delete of an unknown
// id is not an error.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Notice  string `json:"notice,omitempty"`
}

func FromBillLine(l entities.BillLine) BillLineResponse {
	return BillLineResponse{ID: l.ID, Name: l.Name, Price: l.Price, Type: string(l.Type)}
}

func FromBillLines(lines []entities.BillLine) []BillLineResponse {
	out := make([]BillLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromBillLine(l))
	}
	return out
}

func FromCurrentBill(lines []entities.BillLine, total float64) CurrentBillResponse {
	return CurrentBillResponse{Lines: FromBillLines(lines), Total: total}
}

func FromBillHistory(b entities.BillHistory) BillHistoryResponse {
	return BillHistoryResponse{
		ID:        b.ID,
		Date:      b.Date,
		Items:     FromBillLines(b.Items),
		ItemCount: len(b.Items),
		Total:     b.Total,
	}
}

func FromBillHistories(bills []entities.BillHistory) []BillHistoryResponse {
	out := make([]BillHistoryResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBillHistory(b))
	}
	return out
}
