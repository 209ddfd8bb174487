package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"counter_billing/internal/usecase/interfaces"
)

const (
	MenuStoreKey    = "foodItems"
	HistoryStoreKey = "billHistory"

	snapshotVersion = 1
)

var (
	ErrStoreWriteFailed = errors.New("store write failed")
	ErrCorruptSnapshot  = errors.New("corrupt snapshot")
)

// snapshot is the persisted envelope of a whole collection.
//
// Version 0 is the bare JSON array written by the first mobile release; it is
// still accepted on read and rewritten as version 1 on the next mutation.
type snapshot[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

func encodeSnapshot[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(snapshot[T]{Version: snapshotVersion, Items: items})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSnapshot[T any](raw string, validate func(T) error) ([]T, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty value", ErrCorruptSnapshot)
	}

	var items []T
	if strings.HasPrefix(trimmed, "[") {
		if err := strictUnmarshal([]byte(trimmed), &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
	} else {
		var s snapshot[T]
		if err := strictUnmarshal([]byte(trimmed), &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if s.Version != snapshotVersion {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, s.Version)
		}
		items = s.Items
	}

	for i, it := range items {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptSnapshot, i, err)
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func strictUnmarshal(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after snapshot")
	}
	return nil
}

// loadCollection reads a collection from the store. A missing key and a
// failed read both yield an empty collection; only undecodable data is an
// error.
func loadCollection[T any](ctx context.Context, store interfaces.IKeyValueStore, key, tag string, validate func(T) error) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("[%s][usecase] store read failed key=%s err=%v; starting empty", tag, key, err)
		return []T{}, nil
	}
	if !found {
		log.Printf("[%s][usecase] no stored data key=%s", tag, key)
		return []T{}, nil
	}
	return decodeSnapshot(raw, validate)
}

func saveCollection[T any](ctx context.Context, store interfaces.IKeyValueStore, key string, items []T) error {
	raw, err := encodeSnapshot(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWriteFailed, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWriteFailed, err)
	}
	return nil
}

// StoreKey applies an optional namespace prefix to one of the fixed keys.
func StoreKey(prefix, key string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}
