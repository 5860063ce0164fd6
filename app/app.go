package app

import (
	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"

	"ethnicshop.GO/catalog"
	"ethnicshop.GO/checkout"
	"ethnicshop.GO/store"
)

// App bundles the engines and optional backends every route module needs.
// There is one App per process; route registrars receive it by pointer and
// must not replace its fields after startup.
type App struct {
	Catalog  *catalog.Catalog
	Store    *store.Store
	Checkout *checkout.Service
	DB       *gorm.DB
	ES       *elasticsearch.Client
}
