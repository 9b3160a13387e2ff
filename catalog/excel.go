package catalog

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/models"
)

// SheetName is the worksheet Export writes and Import reads first.
const SheetName = "Products"

var sheetHeaders = []string{"ID", "Name", "Description", "Ingredients", "ImageURL"}

// Export writes the whole catalog as an .xlsx workbook.
func Export(ctx context.Context, db *gorm.DB, w io.Writer) (int, error) {
	products, err := All(ctx, db)
	if err != nil {
		return 0, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return 0, fmt.Errorf("create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range sheetHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(models.Text(p.Description))
		row.AddCell().SetString(models.Text(p.Ingredients))
		row.AddCell().SetString(models.Text(p.ImageURL))
	}

	if err := file.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return len(products), nil
}

// ReadSheet parses products from the first sheet of a workbook laid out the
// way Export writes it. Rows without a name, or with an id that is not a
// number, are counted as skipped.
func ReadSheet(r io.ReaderAt, size int64) ([]models.Product, int, error) {
	xlFile, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, 0, fmt.Errorf("parse workbook: %w", err)
	}
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 1 {
		return nil, 0, fmt.Errorf("workbook is empty or missing header row")
	}

	sheet := xlFile.Sheets[0]
	var products []models.Product
	skipped := 0
	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if row != nil && index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		name := get(1)
		if name == "" {
			skipped++
			continue
		}
		var id int
		if s := get(0); s != "" {
			if id, err = strconv.Atoi(s); err != nil {
				skipped++
				continue
			}
		}
		products = append(products, models.Product{
			ID:          id,
			Name:        name,
			Description: optional(get(2)),
			Ingredients: optional(get(3)),
			ImageURL:    optional(get(4)),
		})
	}
	return products, skipped, nil
}

// Import reads a workbook and upserts its products.
func Import(ctx context.Context, db *gorm.DB, r io.ReaderAt, size int64) (Result, error) {
	products, skipped, err := ReadSheet(r, size)
	if err != nil {
		return Result{}, err
	}
	res, err := Upsert(ctx, db, products)
	if err != nil {
		return Result{}, err
	}
	res.Skipped += skipped
	return res, nil
}
