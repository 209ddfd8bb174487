package usecase

import (
	"errors"
	"reflect"
	"testing"

	"counter_billing/internal/domain/entities"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Run("food items", func(t *testing.T) {
		items := []entities.FoodItem{
			{ID: "a", Name: "Dosa", HalfPrice: 40, FullPrice: 70, ImageURL: "http://img/dosa"},
			{ID: "b", Name: "Idli", HalfPrice: 20, FullPrice: 35},
		}
		raw, err := encodeSnapshot(items)
		if err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}
		got, err := decodeSnapshot(raw, validateFoodItem)
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if !reflect.DeepEqual(got, items) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, items)
		}
	})

	t.Run("bill history", func(t *testing.T) {
		bills := []entities.BillHistory{
			{ID: "b2", Date: "3/14/2025, 7:05:09 PM", Items: []entities.BillLine{{ID: "l3", Name: "Idli", Price: 20, Type: entities.TierHalf}}, Total: 20},
			{ID: "b1", Date: "3/14/2025, 6:00:00 PM", Items: []entities.BillLine{{ID: "l1", Name: "Dosa", Price: 70, Type: entities.TierFull}, {ID: "l2", Name: "Dosa", Price: 40, Type: entities.TierHalf}}, Total: 110},
		}
		raw, err := encodeSnapshot(bills)
		if err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}
		got, err := decodeSnapshot(raw, validateBillHistory)
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if !reflect.DeepEqual(got, bills) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, bills)
		}
	})

	t.Run("empty collection encodes as empty list", func(t *testing.T) {
		raw, err := encodeSnapshot[entities.FoodItem](nil)
		if err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}
		if raw != `{"version":1,"items":[]}` {
			t.Fatalf("unexpected encoding: %s", raw)
		}
	})
}

func TestSnapshot_LegacyArray(t *testing.T) {
	raw := `[{"id":"1712000000000","name":"Dosa","halfPrice":40,"fullPrice":70,"imageUrl":"https://api.a0.dev/assets/image?text=x"}]`

	got, err := decodeSnapshot(raw, validateFoodItem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Dosa" || got[0].FullPrice != 70 {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestSnapshot_FailsClosed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "  "},
		{name: "not json", raw: "{"},
		{name: "null", raw: "null"},
		{name: "unknown field", raw: `{"version":1,"items":[{"id":"1","name":"Dosa","halfPrice":1,"fullPrice":2,"imageUrl":"","spicy":true}]}`},
		{name: "unsupported version", raw: `{"version":2,"items":[]}`},
		{name: "trailing data", raw: `{"version":1,"items":[]} []`},
		{name: "missing id", raw: `{"version":1,"items":[{"name":"Dosa","halfPrice":1,"fullPrice":2,"imageUrl":""}]}`},
		{name: "negative price", raw: `[{"id":"1","name":"Dosa","halfPrice":-1,"fullPrice":2,"imageUrl":""}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeSnapshot(tc.raw, validateFoodItem)
			if !errors.Is(err, ErrCorruptSnapshot) {
				t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
			}
		})
	}
}

func TestValidateBillHistory(t *testing.T) {
	valid := entities.BillHistory{ID: "b1", Date: "d", Items: []entities.BillLine{{ID: "l1", Name: "Dosa", Price: 70, Type: entities.TierFull}}, Total: 70}
	if err := validateBillHistory(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stale := valid.Clone()
	stale.Total = 80
	if err := validateBillHistory(stale); err == nil {
		t.Fatalf("expected total mismatch error")
	}

	badTier := valid.Clone()
	badTier.Items[0].Type = "quarter"
	if err := validateBillHistory(badTier); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}

	empty := valid.Clone()
	empty.Items = nil
	empty.Total = 0
	if err := validateBillHistory(empty); !errors.Is(err, ErrEmptyBill) {
		t.Fatalf("expected ErrEmptyBill, got %v", err)
	}
}

func TestStoreKey(t *testing.T) {
	if got := StoreKey("", MenuStoreKey); got != "foodItems" {
		t.Fatalf("expected bare key, got %s", got)
	}
	if got := StoreKey(" counter-1 ", HistoryStoreKey); got != "counter-1:billHistory" {
		t.Fatalf("expected prefixed key, got %s", got)
	}
}
