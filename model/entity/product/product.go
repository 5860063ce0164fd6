package product

import (
	"encoding/json"

	"gorm.io/datatypes"

	"ethnicshop.GO/catalog"
)

// Product represents the catalog_product table of the local catalog store.
// Multi-valued fields (images, sizes) are kept as JSON columns.
type Product struct {
	ID            int            `gorm:"column:id;primaryKey" json:"id"`
	Name          string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category      string         `gorm:"column:category;type:varchar(64);index" json:"category"`
	Gender        string         `gorm:"column:gender;type:varchar(16);index" json:"gender"`
	Price         int            `gorm:"column:price;not null" json:"price"`
	OriginalPrice int            `gorm:"column:original_price;not null" json:"originalPrice"`
	Fabric        string         `gorm:"column:fabric;type:varchar(64);index" json:"fabric"`
	Color         string         `gorm:"column:color;type:varchar(64)" json:"color"`
	Occasion      string         `gorm:"column:occasion;type:varchar(64)" json:"occasion"`
	Image         string         `gorm:"column:image;type:varchar(255)" json:"image"`
	Images        datatypes.JSON `gorm:"column:images" json:"images"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Care          string         `gorm:"column:care;type:text" json:"care"`
	Sizes         datatypes.JSON `gorm:"column:sizes" json:"sizes"`
	InStock       bool           `gorm:"column:in_stock;not null;default:true" json:"inStock"`
	Featured      bool           `gorm:"column:featured;not null;default:false" json:"featured"`
	Trending      bool           `gorm:"column:trending;not null;default:false" json:"trending"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// FromCatalog converts a catalog record to its database row.
func FromCatalog(p catalog.Product) (Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return Product{}, err
	}
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return Product{}, err
	}
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Gender:        p.Gender,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Fabric:        p.Fabric,
		Color:         p.Color,
		Occasion:      p.Occasion,
		Image:         p.Image,
		Images:        datatypes.JSON(images),
		Description:   p.Description,
		Care:          p.Care,
		Sizes:         datatypes.JSON(sizes),
		InStock:       p.InStock,
		Featured:      p.Featured,
		Trending:      p.Trending,
	}, nil
}

// ToCatalog converts a database row back to a catalog record.
func (e Product) ToCatalog() (catalog.Product, error) {
	var images, sizes []string
	if len(e.Images) > 0 {
		if err := json.Unmarshal(e.Images, &images); err != nil {
			return catalog.Product{}, err
		}
	}
	if len(e.Sizes) > 0 {
		if err := json.Unmarshal(e.Sizes, &sizes); err != nil {
			return catalog.Product{}, err
		}
	}
	return catalog.Product{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		Gender:        e.Gender,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Fabric:        e.Fabric,
		Color:         e.Color,
		Occasion:      e.Occasion,
		Image:         e.Image,
		Images:        images,
		Description:   e.Description,
		Care:          e.Care,
		Sizes:         sizes,
		InStock:       e.InStock,
		Featured:      e.Featured,
		Trending:      e.Trending,
	}, nil
}
