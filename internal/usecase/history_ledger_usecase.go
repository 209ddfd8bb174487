package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"counter_billing/internal/domain/entities"
	"counter_billing/internal/usecase/interfaces"
)

// BillDateLayout renders the save timestamp the way the counter app always
// displayed it, e.g. "3/14/2025, 7:05:09 PM".
const BillDateLayout = "1/2/2006, 3:04:05 PM"

var (
	ErrEmptyBill     = errors.New("bill is empty")
	ErrInvalidBillID = errors.New("invalid bill id")
)

// IHistoryLedgerUseCase keeps finalized bills, newest first.
//
// Requested behavior:
//   - saving an empty bill is rejected without touching state
//   - a saved bill is prepended and its total is frozen
//   - deleting everything removes the key from the store

type IHistoryLedgerUseCase interface {
	Load(ctx context.Context) error
	Save(ctx context.Context, lines []entities.BillLine) (entities.BillHistory, error)
	DeleteOne(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
	GetByID(id string) (entities.BillHistory, bool)
	List() []entities.BillHistory
}

type HistoryLedgerUseCase struct {
	mu       sync.Mutex
	store    interfaces.IKeyValueStore
	key      string
	location *time.Location
	now      func() time.Time
	bills    []entities.BillHistory
}

var _ IHistoryLedgerUseCase = (*HistoryLedgerUseCase)(nil)

func NewHistoryLedgerUseCase(store interfaces.IKeyValueStore, key string, location *time.Location) *HistoryLedgerUseCase {
	if key == "" {
		key = HistoryStoreKey
	}
	if location == nil {
		location = time.Local
	}
	return &HistoryLedgerUseCase{
		store:    store,
		key:      key,
		location: location,
		now:      time.Now,
		bills:    []entities.BillHistory{},
	}
}

func (u *HistoryLedgerUseCase) Load(ctx context.Context) error {
	bills, err := loadCollection(ctx, u.store, u.key, "history", validateBillHistory)
	if err != nil {
		log.Printf("[history][usecase] load failed key=%s err=%v", u.key, err)
		return err
	}

	u.mu.Lock()
	u.bills = bills
	u.mu.Unlock()
	log.Printf("[history][usecase] loaded key=%s bills=%d", u.key, len(bills))
	return nil
}

func (u *HistoryLedgerUseCase) Save(ctx context.Context, lines []entities.BillLine) (entities.BillHistory, error) {
	if len(lines) == 0 {
		log.Printf("[history][usecase] save rejected: empty bill")
		return entities.BillHistory{}, ErrEmptyBill
	}

	items := entities.CopyLines(lines)
	total := entities.SumLines(items)
	if !finiteTotal(total) {
		log.Printf("[history][usecase] save rejected: total overflow lines=%d", len(items))
		return entities.BillHistory{}, ErrBillTotalOverflow
	}
	bill := entities.BillHistory{
		ID:    newID(),
		Date:  u.now().In(u.location).Format(BillDateLayout),
		Items: items,
		Total: total,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := make([]entities.BillHistory, 0, len(u.bills)+1)
	next = append(next, bill)
	next = append(next, u.bills...)
	u.bills = next
	log.Printf("[history][usecase] save bill_id=%s lines=%d total=%.2f", bill.ID, len(items), bill.Total)

	if err := saveCollection(ctx, u.store, u.key, u.bills); err != nil {
		log.Printf("[history][usecase] persist failed after save bill_id=%s err=%v", bill.ID, err)
		return bill.Clone(), err
	}
	return bill.Clone(), nil
}

func (u *HistoryLedgerUseCase) DeleteOne(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidBillID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, b := range u.bills {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("[history][usecase] delete no-op bill_id=%s", id)
		return false, nil
	}

	next := make([]entities.BillHistory, 0, len(u.bills)-1)
	next = append(next, u.bills[:idx]...)
	next = append(next, u.bills[idx+1:]...)
	u.bills = next
	log.Printf("[history][usecase] delete bill_id=%s remaining=%d", id, len(next))

	if err := saveCollection(ctx, u.store, u.key, u.bills); err != nil {
		log.Printf("[history][usecase] persist failed after delete bill_id=%s err=%v", id, err)
		return true, err
	}
	return true, nil
}

func (u *HistoryLedgerUseCase) DeleteAll(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	cleared := len(u.bills)
	u.bills = []entities.BillHistory{}
	log.Printf("[history][usecase] delete-all bills=%d", cleared)

	if err := u.store.Remove(ctx, u.key); err != nil {
		log.Printf("[history][usecase] persist failed after delete-all err=%v", err)
		return fmt.Errorf("%w: %w", ErrStoreWriteFailed, err)
	}
	return nil
}

func (u *HistoryLedgerUseCase) GetByID(id string) (entities.BillHistory, bool) {
	id = strings.TrimSpace(id)

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, b := range u.bills {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return entities.BillHistory{}, false
}

func (u *HistoryLedgerUseCase) List() []entities.BillHistory {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.BillHistory, len(u.bills))
	for i, b := range u.bills {
		out[i] = b.Clone()
	}
	return out
}

func validateBillHistory(b entities.BillHistory) error {
	if strings.TrimSpace(b.ID) == "" {
		return ErrInvalidBillID
	}
	if len(b.Items) == 0 {
		return ErrEmptyBill
	}
	for _, l := range b.Items {
		if strings.TrimSpace(l.Name) == "" {
			return ErrInvalidItemName
		}
		if !validPrice(l.Price) {
			return ErrInvalidItemPrice
		}
		if !l.Type.Valid() {
			return ErrInvalidTier
		}
	}
	if math.Abs(entities.SumLines(b.Items)-b.Total) > 1e-6 {
		return fmt.Errorf("total %.2f does not match items", b.Total)
	}
	return nil
}
