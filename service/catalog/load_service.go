package catalog

import (
	"fmt"

	"gorm.io/gorm"

	"ethnicshop.GO/catalog"
	productRepo "ethnicshop.GO/model/repository/product"
)

// LoadCatalog builds the in-memory query catalog from the database. The
// query engine always runs over the in-memory snapshot; the database is
// only the durable source the snapshot is read from.
func LoadCatalog(db *gorm.DB) (*catalog.Catalog, error) {
	repo := productRepo.NewProductRepository(db)
	rows, err := repo.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("fetch catalog rows: %w", err)
	}
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToCatalog()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.ID, err)
		}
		products = append(products, p)
	}
	return catalog.New(products), nil
}

// LoadOrSeed returns the database-backed catalog, falling back to the
// embedded seed when the database is empty or unavailable.
func LoadOrSeed(db *gorm.DB) *catalog.Catalog {
	if db != nil {
		if c, err := LoadCatalog(db); err == nil && c.Len() > 0 {
			return c
		}
	}
	return catalog.Default()
}

// EnsureSeeded imports the embedded seed when the catalog table is empty.
// Returns the number of products imported, zero when the table already has
// rows.
func EnsureSeeded(db *gorm.DB) (int, error) {
	repo := productRepo.NewProductRepository(db)
	if n, err := repo.Count(); err == nil && n > 0 {
		return 0, nil
	}
	res, err := ImportSeed(db, ImportOptions{})
	if err != nil {
		return 0, err
	}
	return res.Imported, nil
}
