package usecase

import (
	"errors"
	"math"
	"sync"

	"counter_billing/internal/domain/entities"
)

var (
	ErrInvalidTier       = errors.New("invalid tier")
	ErrBillTotalOverflow = errors.New("bill total is not a finite number")
)

// IBillBuilder holds the in-progress bill. It is never persisted.
type IBillBuilder interface {
	AddLine(item entities.FoodItem, tier entities.Tier) (entities.BillLine, error)
	Lines() []entities.BillLine
	Total() float64
	Clear()
	RemoveLinesForDeletedItem(name string) int
}

type BillBuilder struct {
	mu    sync.Mutex
	lines []entities.BillLine
}

var _ IBillBuilder = (*BillBuilder)(nil)

func NewBillBuilder() *BillBuilder {
	return &BillBuilder{lines: []entities.BillLine{}}
}

// AddLine appends a snapshot of item at the given tier. Selecting the same
// item twice yields two lines. A line that would push the total past the
// float64 range is rejected, since such a bill could never be stored.
func (b *BillBuilder) AddLine(item entities.FoodItem, tier entities.Tier) (entities.BillLine, error) {
	if !tier.Valid() {
		return entities.BillLine{}, ErrInvalidTier
	}

	line := entities.BillLine{
		ID:    newID(),
		Name:  item.Name,
		Price: item.PriceFor(tier),
		Type:  tier,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !finiteTotal(entities.SumLines(b.lines) + line.Price) {
		return entities.BillLine{}, ErrBillTotalOverflow
	}
	b.lines = append(b.lines, line)
	return line, nil
}

func (b *BillBuilder) Lines() []entities.BillLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	return entities.CopyLines(b.lines)
}

func (b *BillBuilder) Total() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return entities.SumLines(b.lines)
}

func (b *BillBuilder) Clear() {
	b.mu.Lock()
	b.lines = []entities.BillLine{}
	b.mu.Unlock()
}

// RemoveLinesForDeletedItem drops every line whose name equals name and
// returns how many were removed. Lines keep no item id, so matching is by
// name; the catalog rejects duplicate names to keep this unambiguous.
func (b *BillBuilder) RemoveLinesForDeletedItem(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := make([]entities.BillLine, 0, len(b.lines))
	for _, l := range b.lines {
		if l.Name != name {
			kept = append(kept, l)
		}
	}
	removed := len(b.lines) - len(kept)
	b.lines = kept
	return removed
}

func finiteTotal(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
