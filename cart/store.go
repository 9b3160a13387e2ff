package cart

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// StorageKey is the key the cart is kept under in client storage.
const StorageKey = "cart"

// Storage is durable key/value storage on the client.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Load rehydrates the cart from storage. Missing, unreadable or corrupt data
// yields an empty cart; corruption is logged, not returned.
func Load(s Storage, log *zap.Logger) *Cart {
	raw, ok, err := s.Get(StorageKey)
	if err != nil {
		log.Warn("Failed to read stored cart, starting empty", zap.Error(err))
		return &Cart{}
	}
	if !ok {
		return &Cart{}
	}

	c := &Cart{}
	if err := json.Unmarshal([]byte(raw), c); err != nil {
		log.Warn("Stored cart is not valid JSON, starting empty", zap.Error(err))
		return &Cart{}
	}
	if err := c.validate(); err != nil {
		log.Warn("Stored cart is inconsistent, starting empty", zap.Error(err))
		return &Cart{}
	}
	return c
}

// Save writes the whole cart under StorageKey.
func Save(s Storage, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("store cart: %w", err)
	}
	return nil
}
