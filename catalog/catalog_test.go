package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/Deepika-251004/shampoo-website/database/databasetest"
	"github.com/Deepika-251004/shampoo-website/models"
)

const seedYAML = `products:
  - id: 1
    name: Rosemary Shampoo
    description: Strengthens roots.
    ingredients: Rosemary oil, Biotin
    image_url: /img/rosemary.jpg
  - id: 2
    name: Argan Conditioner
    description: "  "
  - name: "   "
`

func TestSeed(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	res, err := Seed(ctx, db, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2, Skipped: 1}, res)

	products, err := All(ctx, db)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rosemary Shampoo", products[0].Name)
	assert.Equal(t, "/img/rosemary.jpg", models.Text(products[0].ImageURL))
	assert.Nil(t, products[1].Description, "blank text is stored as null")

	res, err = Seed(ctx, db, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, Result{Updated: 2, Skipped: 1}, res)
}

func TestSeed_UpdateClearsColumns(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	_, err := Seed(ctx, db, strings.NewReader(seedYAML))
	require.NoError(t, err)

	_, err = Seed(ctx, db, strings.NewReader("products:\n  - id: 1\n    name: Rosemary Wash\n"))
	require.NoError(t, err)

	var p models.Product
	require.NoError(t, db.First(&p, 1).Error)
	assert.Equal(t, "Rosemary Wash", p.Name)
	assert.Nil(t, p.Ingredients)
	assert.Nil(t, p.ImageURL)
}

func TestParseSeed_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseSeed(strings.NewReader("products:\n  - name: Mint\n    price: 25\n"))
	assert.Error(t, err)
}

func TestParseSeed_Empty(t *testing.T) {
	products, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWriteSeed_ParsesBack(t *testing.T) {
	in := []models.Product{
		{ID: 3, Name: "Oat Balm", Ingredients: models.StringPtr("Oat extract")},
		{ID: 4, Name: "Tea Tree Wash"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSeed(&buf, in))

	out, err := ParseSeed(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUpsert_StoreFailure(t *testing.T) {
	_, err := Upsert(context.Background(), databasetest.Closed(t), []models.Product{{Name: "Mint"}})
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	_, err := Seed(ctx, db, strings.NewReader(seedYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := Export(ctx, db, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	wb, err := xlsx.OpenReaderAt(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	sheet := wb.Sheets[0]
	assert.Equal(t, SheetName, sheet.Name)
	require.Len(t, sheet.Rows, 3)

	var header []string
	for _, c := range sheet.Rows[0].Cells {
		header = append(header, c.String())
	}
	assert.Equal(t, []string{"ID", "Name", "Description", "Ingredients", "ImageURL"}, header)
	assert.Equal(t, "1", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "Rosemary Shampoo", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "Argan Conditioner", sheet.Rows[2].Cells[1].String())
}

func TestImport_RoundTrip(t *testing.T) {
	src := databasetest.New(t)
	ctx := context.Background()
	_, err := Seed(ctx, src, strings.NewReader(seedYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Export(ctx, src, &buf)
	require.NoError(t, err)

	dst := databasetest.New(t)
	res, err := Import(ctx, dst, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2}, res)

	want, err := All(ctx, src)
	require.NoError(t, err)
	got, err := All(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadSheet_SkipsBadRows(t *testing.T) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	require.NoError(t, err)
	for _, cells := range [][]string{
		{"ID", "Name", "Description", "Ingredients", "ImageURL"},
		{"", "Mint Shampoo", "", "Mint oil", ""},
		{"x7", "Bad Id", "", "", ""},
		{"8", "", "", "", ""},
	} {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	products, skipped, err := ReadSheet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, products, 1)
	assert.Equal(t, models.Product{Name: "Mint Shampoo", Ingredients: models.StringPtr("Mint oil")}, products[0])
}

func TestReadSheet_NotAWorkbook(t *testing.T) {
	data := []byte("id,name\n1,Mint\n")
	_, _, err := ReadSheet(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}
