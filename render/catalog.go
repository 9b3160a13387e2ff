package render

import "github.com/Deepika-251004/shampoo-website/models"

// CatalogState is what the product list is currently showing.
type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogEmpty
	CatalogFailed
	CatalogLoaded
)

// ProductCard is one product as the catalog displays it.
type ProductCard struct {
	ID          int
	Name        string
	Description string
	Ingredients string
	ImageURL    string
	Product     models.Product
}

// HasImage reports whether the card shows an image or the placeholder.
func (p ProductCard) HasImage() bool { return p.ImageURL != "" }

type CatalogView struct {
	State CatalogState
	Cards []ProductCard
}

func LoadingCatalog() CatalogView {
	return CatalogView{State: CatalogLoading}
}

// ProjectCatalog turns a fetch result into the catalog display. A failed
// fetch wins over whatever products came back with it.
func ProjectCatalog(products []models.Product, err error) CatalogView {
	switch {
	case err != nil:
		return CatalogView{State: CatalogFailed}
	case len(products) == 0:
		return CatalogView{State: CatalogEmpty}
	}
	v := CatalogView{State: CatalogLoaded, Cards: make([]ProductCard, 0, len(products))}
	for _, p := range products {
		v.Cards = append(v.Cards, ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: models.Text(p.Description),
			Ingredients: models.Text(p.Ingredients),
			ImageURL:    models.Text(p.ImageURL),
			Product:     p,
		})
	}
	return v
}

// Find returns the card for a product id.
func (v CatalogView) Find(id int) (ProductCard, bool) {
	for _, c := range v.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return ProductCard{}, false
}
