package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"counter_billing/internal/adapter/persistence/kvstore"
	"counter_billing/internal/domain/entities"
	mock_interfaces "counter_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCounter(t *testing.T, store *kvstore.MemoryKeyValueStore) *CounterUseCase {
	t.Helper()
	menu := NewMenuCatalogUseCase(store, nil, MenuStoreKey)
	ledger := NewHistoryLedgerUseCase(store, HistoryStoreKey, time.UTC)
	uc := NewCounterUseCase(menu, NewBillBuilder(), ledger)
	if err := uc.Load(context.Background(), false); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return uc
}

func TestCounterUseCase_DosaScenario(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryKeyValueStore()
	uc := newCounter(t, store)

	item, err := uc.AddMenuItem(ctx, "Dosa", 40, 70, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uc.ListMenu()) != 1 {
		t.Fatalf("expected 1 menu entry")
	}

	line, err := uc.SelectItem(item.ID, entities.TierFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Name != "Dosa" || line.Price != 70 || line.Type != entities.TierFull {
		t.Fatalf("unexpected line: %+v", line)
	}
	if bill := uc.CurrentBill(); len(bill.Lines) != 1 || bill.Total != 70 {
		t.Fatalf("unexpected current bill: %+v", bill)
	}

	saved, err := uc.SaveBill(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Total != 70 {
		t.Fatalf("expected total 70, got %v", saved.Total)
	}
	history := uc.ListHistory()
	if len(history) != 1 || history[0].ID != saved.ID {
		t.Fatalf("unexpected history: %+v", history)
	}
	if bill := uc.CurrentBill(); len(bill.Lines) != 0 || bill.Total != 0 {
		t.Fatalf("expected empty bill after save, got %+v", bill)
	}

	// a fresh session over the same store sees the persisted state
	reloaded := newCounter(t, store)
	if len(reloaded.ListMenu()) != 1 || len(reloaded.ListHistory()) != 1 {
		t.Fatalf("expected persisted menu and history")
	}
	if len(reloaded.CurrentBill().Lines) != 0 {
		t.Fatalf("in-progress bill must not persist")
	}
}

func TestCounterUseCase_DeleteItemDuringBill(t *testing.T) {
	ctx := context.Background()
	uc := newCounter(t, kvstore.NewMemoryKeyValueStore())

	dosaItem, _ := uc.AddMenuItem(ctx, "Dosa", 40, 70, "")
	idliItem, _ := uc.AddMenuItem(ctx, "Idli", 20, 35, "")

	_, _ = uc.SelectItem(dosaItem.ID, entities.TierFull)
	saved, err := uc.SaveBill(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _ = uc.SelectItem(dosaItem.ID, entities.TierHalf)
	_, _ = uc.SelectItem(idliItem.ID, entities.TierFull)

	ok, err := uc.DeleteMenuItem(ctx, dosaItem.ID)
	if err != nil || !ok {
		t.Fatalf("unexpected delete result ok=%v err=%v", ok, err)
	}

	bill := uc.CurrentBill()
	if len(bill.Lines) != 1 || bill.Lines[0].Name != "Idli" || bill.Total != 35 {
		t.Fatalf("expected only Idli left in bill, got %+v", bill)
	}

	got, err := uc.GetBill(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Dosa" || got.Total != 70 {
		t.Fatalf("saved bill changed after catalog delete: %+v", got)
	}

	if _, err := uc.SelectItem(dosaItem.ID, entities.TierFull); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestCounterUseCase_HistoryOperations(t *testing.T) {
	ctx := context.Background()
	uc := newCounter(t, kvstore.NewMemoryKeyValueStore())
	item, _ := uc.AddMenuItem(ctx, "Vada", 15, 25, "")

	t.Run("empty bill", func(t *testing.T) {
		if _, err := uc.SaveBill(ctx); !errors.Is(err, ErrEmptyBill) {
			t.Fatalf("expected ErrEmptyBill, got %v", err)
		}
		if len(uc.ListHistory()) != 0 {
			t.Fatalf("expected history unchanged")
		}
	})

	var ids []string
	for i := 0; i < 3; i++ {
		_, _ = uc.SelectItem(item.ID, entities.TierHalf)
		b, err := uc.SaveBill(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, b.ID)
	}

	t.Run("get bill", func(t *testing.T) {
		if _, err := uc.GetBill(" "); !errors.Is(err, ErrInvalidBillID) {
			t.Fatalf("expected ErrInvalidBillID, got %v", err)
		}
		if _, err := uc.GetBill("missing"); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("delete one", func(t *testing.T) {
		ok, err := uc.DeleteBill(ctx, ids[1])
		if err != nil || !ok {
			t.Fatalf("unexpected result ok=%v err=%v", ok, err)
		}
		if len(uc.ListHistory()) != 2 {
			t.Fatalf("expected 2 bills left")
		}
	})

	t.Run("clear history", func(t *testing.T) {
		if err := uc.ClearHistory(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.ListHistory()) != 0 {
			t.Fatalf("expected empty history")
		}
		if ok, err := uc.DeleteBill(ctx, ids[0]); ok || err != nil {
			t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
		}
	})
}

func TestCounterUseCase_ClearBill(t *testing.T) {
	ctx := context.Background()
	uc := newCounter(t, kvstore.NewMemoryKeyValueStore())
	item, _ := uc.AddMenuItem(ctx, "Upma", 25, 45, "")

	if _, err := uc.SelectItem("", entities.TierFull); !errors.Is(err, ErrInvalidItemID) {
		t.Fatalf("expected ErrInvalidItemID, got %v", err)
	}
	if _, err := uc.SelectItem(item.ID, "large"); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}

	_, _ = uc.SelectItem(item.ID, entities.TierFull)
	uc.ClearBill()
	if len(uc.CurrentBill().Lines) != 0 {
		t.Fatalf("expected empty bill")
	}
}

func TestCounterUseCase_SaveBillWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIKeyValueStore(ctrl)

	menu := NewMenuCatalogUseCase(store, nil, "")
	ledger := NewHistoryLedgerUseCase(store, "", time.UTC)
	uc := NewCounterUseCase(menu, NewBillBuilder(), ledger)

	gomock.InOrder(
		store.EXPECT().Set(gomock.Any(), MenuStoreKey, gomock.Any()).Return(nil),
		store.EXPECT().Set(gomock.Any(), HistoryStoreKey, gomock.Any()).Return(errors.New("io")),
	)

	item, _ := uc.AddMenuItem(context.Background(), "Dosa", 40, 70, "")
	_, _ = uc.SelectItem(item.ID, entities.TierFull)

	saved, err := uc.SaveBill(context.Background())
	if !errors.Is(err, ErrStoreWriteFailed) {
		t.Fatalf("expected ErrStoreWriteFailed, got %v", err)
	}
	if saved.ID == "" || len(uc.ListHistory()) != 1 {
		t.Fatalf("expected bill kept in memory")
	}
	if len(uc.CurrentBill().Lines) != 0 {
		t.Fatalf("expected bill cleared once the ledger accepted it")
	}
}

func TestCounterUseCase_Load(t *testing.T) {
	t.Run("corrupt fails closed", func(t *testing.T) {
		ctx := context.Background()
		store := kvstore.NewMemoryKeyValueStore()
		_ = store.Set(ctx, MenuStoreKey, "garbage")

		menu := NewMenuCatalogUseCase(store, nil, "")
		ledger := NewHistoryLedgerUseCase(store, "", time.UTC)
		uc := NewCounterUseCase(menu, NewBillBuilder(), ledger)

		if err := uc.Load(ctx, false); !errors.Is(err, ErrCorruptSnapshot) {
			t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
		}
	})

	t.Run("corrupt discarded on request", func(t *testing.T) {
		ctx := context.Background()
		store := kvstore.NewMemoryKeyValueStore()
		_ = store.Set(ctx, MenuStoreKey, "garbage")
		_ = store.Set(ctx, HistoryStoreKey, `[{"id":"1","date":"d","items":[{"id":"l","name":"Dosa","price":70,"type":"full"}],"total":70}]`)

		menu := NewMenuCatalogUseCase(store, nil, "")
		ledger := NewHistoryLedgerUseCase(store, "", time.UTC)
		uc := NewCounterUseCase(menu, NewBillBuilder(), ledger)

		if err := uc.Load(ctx, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.ListMenu()) != 0 {
			t.Fatalf("expected empty menu after discard")
		}
		if len(uc.ListHistory()) != 1 {
			t.Fatalf("expected history still loaded")
		}
	})
}

func TestCounterUseCase_ConcurrentSelectAndSave(t *testing.T) {
	const (
		workers = 16
		selects = 25
	)
	ctx := context.Background()
	store := kvstore.NewMemoryKeyValueStore()
	uc := newCounter(t, store)

	var selected atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			item, err := uc.AddMenuItem(ctx, fmt.Sprintf("Item %d", w), float64(w+1), float64(2*(w+1)), "")
			if err != nil {
				t.Errorf("add item %d: %v", w, err)
				return
			}
			for i := 0; i < selects; i++ {
				tier := entities.TierFull
				if i%2 == 0 {
					tier = entities.TierHalf
				}
				if _, err := uc.SelectItem(item.ID, tier); err != nil {
					t.Errorf("select %d/%d: %v", w, i, err)
					continue
				}
				selected.Add(1)
				if i%5 == 4 {
					if _, err := uc.SaveBill(ctx); err != nil && !errors.Is(err, ErrEmptyBill) {
						t.Errorf("save %d/%d: %v", w, i, err)
					}
				}
			}
		}(w)
	}
	wg.Wait()

	history := uc.ListHistory()
	lines := len(uc.CurrentBill().Lines)
	for _, b := range history {
		lines += len(b.Items)
		if b.Total != entities.SumLines(b.Items) {
			t.Fatalf("bill %s total %v does not match its items", b.ID, b.Total)
		}
	}
	if int64(lines) != selected.Load() {
		t.Fatalf("expected %d lines across history and bill, got %d", selected.Load(), lines)
	}

	raw, ok, _ := store.Get(ctx, HistoryStoreKey)
	if !ok {
		t.Fatal("expected a history snapshot")
	}
	stored, err := decodeSnapshot(raw, validateBillHistory)
	if err != nil {
		t.Fatalf("decode history snapshot: %v", err)
	}
	if !reflect.DeepEqual(stored, history) {
		t.Fatalf("stored history (%d bills) diverges from memory (%d bills)", len(stored), len(history))
	}

	raw, _, _ = store.Get(ctx, MenuStoreKey)
	menu, err := decodeSnapshot(raw, validateFoodItem)
	if err != nil {
		t.Fatalf("decode menu snapshot: %v", err)
	}
	if !reflect.DeepEqual(menu, uc.ListMenu()) || len(menu) != workers {
		t.Fatalf("stored menu diverges from memory: %d vs %d", len(menu), len(uc.ListMenu()))
	}
}

func TestCounterUseCase_ConcurrentSelectAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := newCounter(t, kvstore.NewMemoryKeyValueStore())

	for round := 0; round < 20; round++ {
		name := fmt.Sprintf("Special %d", round)
		item, err := uc.AddMenuItem(ctx, name, 10, 20, "")
		if err != nil {
			t.Fatalf("add item: %v", err)
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.SelectItem(item.ID, entities.TierFull)
				if err != nil && !errors.Is(err, ErrMenuItemNotFound) {
					t.Errorf("select: %v", err)
				}
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.DeleteMenuItem(ctx, item.ID); err != nil {
				t.Errorf("delete: %v", err)
			}
		}()
		wg.Wait()

		for _, l := range uc.CurrentBill().Lines {
			if l.Name == name {
				t.Fatalf("round %d: line for deleted item survived: %+v", round, l)
			}
		}
	}
}
