package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"counter_billing/internal/domain/entities"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrBillNotFound     = errors.New("bill not found")
)

// CurrentBill is the read model of the in-progress bill.
type CurrentBill struct {
	Lines []entities.BillLine
	Total float64
}

// ICounterUseCase is what the counter screens drive. It owns one catalog,
// one in-progress bill and one ledger, and performs the side effects that
// span them:
//   - deleting a menu item drops its lines from the in-progress bill
//   - saving a bill clears the in-progress bill

type ICounterUseCase interface {
	ListMenu() []entities.FoodItem
	AddMenuItem(ctx context.Context, name string, halfPrice, fullPrice float64, imageURL string) (entities.FoodItem, error)
	DeleteMenuItem(ctx context.Context, id string) (bool, error)

	SelectItem(itemID string, tier entities.Tier) (entities.BillLine, error)
	CurrentBill() CurrentBill
	ClearBill()
	SaveBill(ctx context.Context) (entities.BillHistory, error)

	ListHistory() []entities.BillHistory
	GetBill(id string) (entities.BillHistory, error)
	DeleteBill(ctx context.Context, id string) (bool, error)
	ClearHistory(ctx context.Context) error
}

type CounterUseCase struct {
	// billMu serializes operations that read and then rewrite the bill.
	billMu sync.Mutex
	menu   IMenuCatalogUseCase
	bill   IBillBuilder
	ledger IHistoryLedgerUseCase
}

var _ ICounterUseCase = (*CounterUseCase)(nil)

func NewCounterUseCase(menu IMenuCatalogUseCase, bill IBillBuilder, ledger IHistoryLedgerUseCase) *CounterUseCase {
	return &CounterUseCase{menu: menu, bill: bill, ledger: ledger}
}

// Load reads the menu and the history. A corrupt snapshot stops the load
// unless discardCorrupt is set, in which case the affected collection starts
// empty and is overwritten on its next mutation.
func (u *CounterUseCase) Load(ctx context.Context, discardCorrupt bool) error {
	loaders := []struct {
		name string
		load func(context.Context) error
	}{
		{name: "menu", load: u.menu.Load},
		{name: "history", load: u.ledger.Load},
	}

	for _, l := range loaders {
		err := l.load(ctx)
		if err == nil {
			continue
		}
		if discardCorrupt && errors.Is(err, ErrCorruptSnapshot) {
			log.Printf("[counter][usecase] discarding corrupt %s snapshot err=%v", l.name, err)
			continue
		}
		return err
	}
	return nil
}

func (u *CounterUseCase) ListMenu() []entities.FoodItem {
	return u.menu.List()
}

func (u *CounterUseCase) AddMenuItem(ctx context.Context, name string, halfPrice, fullPrice float64, imageURL string) (entities.FoodItem, error) {
	return u.menu.AddItem(ctx, name, halfPrice, fullPrice, imageURL)
}

func (u *CounterUseCase) DeleteMenuItem(ctx context.Context, id string) (bool, error) {
	u.billMu.Lock()
	defer u.billMu.Unlock()

	removed, ok, err := u.menu.DeleteItem(ctx, id)
	if !ok {
		return false, err
	}
	if n := u.bill.RemoveLinesForDeletedItem(removed.Name); n > 0 {
		log.Printf("[counter][usecase] dropped bill lines for deleted item item_id=%s name=%q lines=%d", removed.ID, removed.Name, n)
	}
	return true, err
}

func (u *CounterUseCase) SelectItem(itemID string, tier entities.Tier) (entities.BillLine, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.BillLine{}, ErrInvalidItemID
	}
	if !tier.Valid() {
		return entities.BillLine{}, ErrInvalidTier
	}

	u.billMu.Lock()
	defer u.billMu.Unlock()

	item, ok := u.menu.GetByID(itemID)
	if !ok {
		return entities.BillLine{}, ErrMenuItemNotFound
	}
	return u.bill.AddLine(item, tier)
}

func (u *CounterUseCase) CurrentBill() CurrentBill {
	u.billMu.Lock()
	defer u.billMu.Unlock()

	lines := u.bill.Lines()
	return CurrentBill{Lines: lines, Total: entities.SumLines(lines)}
}

func (u *CounterUseCase) ClearBill() {
	u.billMu.Lock()
	defer u.billMu.Unlock()
	u.bill.Clear()
}

// SaveBill moves the in-progress bill into the ledger. The bill is cleared
// whenever the ledger accepted it, including when only the store write
// failed: the ledger already holds it in memory and saving again would
// duplicate it.
func (u *CounterUseCase) SaveBill(ctx context.Context) (entities.BillHistory, error) {
	u.billMu.Lock()
	defer u.billMu.Unlock()

	saved, err := u.ledger.Save(ctx, u.bill.Lines())
	if err != nil && !errors.Is(err, ErrStoreWriteFailed) {
		return entities.BillHistory{}, err
	}
	u.bill.Clear()
	return saved, err
}

func (u *CounterUseCase) ListHistory() []entities.BillHistory {
	return u.ledger.List()
}

func (u *CounterUseCase) GetBill(id string) (entities.BillHistory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillHistory{}, ErrInvalidBillID
	}
	b, ok := u.ledger.GetByID(id)
	if !ok {
		return entities.BillHistory{}, ErrBillNotFound
	}
	return b, nil
}

func (u *CounterUseCase) DeleteBill(ctx context.Context, id string) (bool, error) {
	return u.ledger.DeleteOne(ctx, id)
}

func (u *CounterUseCase) ClearHistory(ctx context.Context) error {
	return u.ledger.DeleteAll(ctx)
}
