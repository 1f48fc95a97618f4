package services

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	AccountStoreKey  = "datos_cuenta"
	TasksStoreKey    = "eventos_calendario"
	SubjectsStoreKey = "lista_proyectos"
)

// DurableStore is a string-keyed persistent dictionary with no cross-key transactions.
type DurableStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// loadSnapshot decodes the value under key into target. It reports false
// when the key is absent and wraps ErrCorruptData when the value is malformed.
func loadSnapshot(ctx context.Context, store DurableStore, key string, target any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorruptData, key, err)
	}
	return true, nil
}

func saveSnapshot(ctx context.Context, store DurableStore, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStoreWrite, key, err)
	}
	if err := store.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreWrite, key, err)
	}
	return nil
}
