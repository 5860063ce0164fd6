package product

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	productEntity "ethnicshop.GO/model/entity/product"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product row.
func (r *ProductRepository) Create(p *productEntity.Product) error {
	return r.db.Create(p).Error
}

// Upsert inserts or replaces a product row by primary key.
func (r *ProductRepository) Upsert(p *productEntity.Product) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

// UpsertBatch upserts rows in batches.
func (r *ProductRepository) UpsertBatch(rows []productEntity.Product, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(rows, batchSize).Error
}

// FindByID fetches one row by id.
func (r *ProductRepository) FindByID(id int) (*productEntity.Product, error) {
	var p productEntity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchAll returns all rows ordered by id, preserving seed insertion order.
func (r *ProductRepository) FetchAll() ([]productEntity.Product, error) {
	var rows []productEntity.Product
	err := r.db.Order("id").Find(&rows).Error
	return rows, err
}

// Count returns the number of catalog rows.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&productEntity.Product{}).Count(&n).Error
	return n, err
}
