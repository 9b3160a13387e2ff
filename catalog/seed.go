package catalog

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/models"
)

// SeedFile is the YAML layout accepted by Seed:
//
//	products:
//	  - id: 1
//	    name: Rosemary Shampoo
//	    ingredients: Rosemary oil, Biotin
type SeedFile struct {
	Products []models.Product `yaml:"products"`
}

// ParseSeed decodes a seed file. Unknown keys are rejected so typos do not
// silently drop a column.
func ParseSeed(r io.Reader) ([]models.Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f SeedFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for i := range f.Products {
		p := &f.Products[i]
		p.Description = optional(models.Text(p.Description))
		p.Ingredients = optional(models.Text(p.Ingredients))
		p.ImageURL = optional(models.Text(p.ImageURL))
	}
	return f.Products, nil
}

// Seed parses r and upserts its products.
func Seed(ctx context.Context, db *gorm.DB, r io.Reader) (Result, error) {
	products, err := ParseSeed(r)
	if err != nil {
		return Result{}, err
	}
	return Upsert(ctx, db, products)
}

// WriteSeed writes products in the layout ParseSeed reads.
func WriteSeed(w io.Writer, products []models.Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SeedFile{Products: products}); err != nil {
		return fmt.Errorf("encode seed file: %w", err)
	}
	return enc.Close()
}
