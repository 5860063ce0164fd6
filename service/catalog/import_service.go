package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"ethnicshop.GO/catalog"
	productEntity "ethnicshop.GO/model/entity/product"
	productRepo "ethnicshop.GO/model/repository/product"
)

// ImportOptions controls a catalog import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult reports what an import run did.
type ImportResult struct {
	TotalRows int
	Imported  int
	Skipped   int
	Warnings  []string
	TotalTime time.Duration
}

// ImportProducts reads a JSON array of catalog products and upserts it into
// the local catalog database. Rows with a non-positive id or an original
// price below the price are skipped with a warning, never an error.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import payload: %w", err)
	}
	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse import payload: %w", err)
	}

	if err := db.AutoMigrate(&productEntity.Product{}); err != nil {
		return nil, fmt.Errorf("migrate catalog schema: %w", err)
	}

	res := &ImportResult{TotalRows: len(products)}
	rows := make([]productEntity.Product, 0, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped %q: missing id", p.Name))
			continue
		}
		if p.OriginalPrice < p.Price {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped id %d: originalPrice %d < price %d", p.ID, p.OriginalPrice, p.Price))
			continue
		}
		row, err := productEntity.FromCatalog(p)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped id %d: %v", p.ID, err))
			continue
		}
		rows = append(rows, row)
	}

	repo := productRepo.NewProductRepository(db)
	if err := repo.UpsertBatch(rows, opts.BatchSize); err != nil {
		return nil, fmt.Errorf("upsert catalog rows: %w", err)
	}
	res.Imported = len(rows)
	res.TotalTime = time.Since(start)
	return res, nil
}

// ImportSeed loads the embedded seed catalog into the database.
func ImportSeed(db *gorm.DB, opts ImportOptions) (*ImportResult, error) {
	data, err := json.Marshal(catalog.SeedProducts())
	if err != nil {
		return nil, err
	}
	return ImportProducts(db, bytes.NewReader(data), opts)
}
