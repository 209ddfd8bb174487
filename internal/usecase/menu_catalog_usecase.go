package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"sync"

	"counter_billing/internal/domain/entities"
	"counter_billing/internal/usecase/interfaces"
)

var (
	ErrInvalidItemName   = errors.New("invalid item name")
	ErrInvalidItemPrice  = errors.New("invalid item price")
	ErrInvalidItemID     = errors.New("invalid item id")
	ErrDuplicateItemName = errors.New("item name already in menu")
)

// IMenuCatalogUseCase owns the list of sellable food items.
//
// Every mutation updates memory first and then writes the whole list under
// the menu key. A failed write is returned wrapped in ErrStoreWriteFailed
// together with the result; memory is not rolled back.

type IMenuCatalogUseCase interface {
	Load(ctx context.Context) error
	AddItem(ctx context.Context, name string, halfPrice, fullPrice float64, imageURL string) (entities.FoodItem, error)
	DeleteItem(ctx context.Context, id string) (entities.FoodItem, bool, error)
	GetByID(id string) (entities.FoodItem, bool)
	List() []entities.FoodItem
}

type MenuCatalogUseCase struct {
	mu     sync.Mutex
	store  interfaces.IKeyValueStore
	images interfaces.IImageURLBuilder
	key    string
	items  []entities.FoodItem
}

var _ IMenuCatalogUseCase = (*MenuCatalogUseCase)(nil)

func NewMenuCatalogUseCase(store interfaces.IKeyValueStore, images interfaces.IImageURLBuilder, key string) *MenuCatalogUseCase {
	if key == "" {
		key = MenuStoreKey
	}
	return &MenuCatalogUseCase{store: store, images: images, key: key, items: []entities.FoodItem{}}
}

func (u *MenuCatalogUseCase) Load(ctx context.Context) error {
	items, err := loadCollection(ctx, u.store, u.key, "menu", validateFoodItem)
	if err != nil {
		log.Printf("[menu][usecase] load failed key=%s err=%v", u.key, err)
		return err
	}

	u.mu.Lock()
	u.items = items
	u.mu.Unlock()
	log.Printf("[menu][usecase] loaded key=%s items=%d", u.key, len(items))
	return nil
}

func (u *MenuCatalogUseCase) AddItem(ctx context.Context, name string, halfPrice, fullPrice float64, imageURL string) (entities.FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.FoodItem{}, ErrInvalidItemName
	}
	if !validPrice(halfPrice) || !validPrice(fullPrice) {
		return entities.FoodItem{}, ErrInvalidItemPrice
	}
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" && u.images != nil {
		imageURL = u.images.Build(name)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for _, it := range u.items {
		if strings.EqualFold(it.Name, name) {
			return entities.FoodItem{}, ErrDuplicateItemName
		}
	}

	item := entities.FoodItem{
		ID:        newID(),
		Name:      name,
		HalfPrice: halfPrice,
		FullPrice: fullPrice,
		ImageURL:  imageURL,
	}
	u.items = append(u.items, item)
	log.Printf("[menu][usecase] add item_id=%s name=%q half=%.2f full=%.2f", item.ID, item.Name, item.HalfPrice, item.FullPrice)

	if err := saveCollection(ctx, u.store, u.key, u.items); err != nil {
		log.Printf("[menu][usecase] persist failed after add item_id=%s err=%v", item.ID, err)
		return item, err
	}
	return item, nil
}

// DeleteItem removes the item with the given id and reports it. An unknown
// id is a no-op and does not touch the store.
func (u *MenuCatalogUseCase) DeleteItem(ctx context.Context, id string) (entities.FoodItem, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FoodItem{}, false, ErrInvalidItemID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, it := range u.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("[menu][usecase] delete no-op item_id=%s", id)
		return entities.FoodItem{}, false, nil
	}

	removed := u.items[idx]
	next := make([]entities.FoodItem, 0, len(u.items)-1)
	next = append(next, u.items[:idx]...)
	next = append(next, u.items[idx+1:]...)
	u.items = next
	log.Printf("[menu][usecase] delete item_id=%s name=%q", removed.ID, removed.Name)

	if err := saveCollection(ctx, u.store, u.key, u.items); err != nil {
		log.Printf("[menu][usecase] persist failed after delete item_id=%s err=%v", id, err)
		return removed, true, err
	}
	return removed, true, nil
}

func (u *MenuCatalogUseCase) GetByID(id string) (entities.FoodItem, bool) {
	id = strings.TrimSpace(id)

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, it := range u.items {
		if it.ID == id {
			return it, true
		}
	}
	return entities.FoodItem{}, false
}

func (u *MenuCatalogUseCase) List() []entities.FoodItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.FoodItem, len(u.items))
	copy(out, u.items)
	return out
}

func validPrice(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateFoodItem(it entities.FoodItem) error {
	switch {
	case strings.TrimSpace(it.ID) == "":
		return ErrInvalidItemID
	case strings.TrimSpace(it.Name) == "":
		return ErrInvalidItemName
	case !validPrice(it.HalfPrice), !validPrice(it.FullPrice):
		return ErrInvalidItemPrice
	}
	return nil
}
