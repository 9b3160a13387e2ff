// Package catalog loads products into the store and dumps them out again.
// It backs the seed, import and export commands; none of it is served over
// HTTP.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/models"
)

// Result counts what an upsert did with each product.
type Result struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// Upsert writes products in one transaction. A product with an id that
// already exists replaces it; anything else is inserted. Products without a
// name are skipped.
func Upsert(ctx context.Context, db *gorm.DB, products []models.Product) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			p.Name = strings.TrimSpace(p.Name)
			if p.Name == "" || p.ID < 0 {
				res.Skipped++
				continue
			}

			if p.ID == 0 {
				if err := tx.Create(&p).Error; err != nil {
					return fmt.Errorf("create %q: %w", p.Name, err)
				}
				res.Created++
				continue
			}

			var existing models.Product
			err := tx.First(&existing, p.ID).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).
					Select("name", "description", "ingredients", "image_url").
					Updates(&p).Error; err != nil {
					return fmt.Errorf("update product %d: %w", p.ID, err)
				}
				res.Updated++
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&p).Error; err != nil {
					return fmt.Errorf("create product %d: %w", p.ID, err)
				}
				res.Created++
			default:
				return fmt.Errorf("look up product %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// All returns every product ordered by id.
func All(ctx context.Context, db *gorm.DB) ([]models.Product, error) {
	products := []models.Product{}
	if err := db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
