// Package jobs holds the built-in cron job functions wired up in
// config.CronJobs. The package reads its settings straight from the
// environment because config itself imports it.
package jobs

import (
	"context"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ethnicshop.GO/catalog"
	"ethnicshop.GO/core/cache"
	"ethnicshop.GO/core/logger"
	productRepo "ethnicshop.GO/model/repository/product"
	"ethnicshop.GO/search"
)

// StateBackupJob copies the shopper state snapshot next to itself with a
// .bak suffix. A missing snapshot is not an error, the shop may simply not
// have persisted anything yet.
func StateBackupJob(args ...string) {
	log := logger.GetLogger()
	src := os.Getenv("STATE_FILE")
	if src == "" {
		src = "ethnicshop_state.json"
	}
	data, err := os.ReadFile(src)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Sugar().Warnf("state backup: read %s: %v", src, err)
		}
		return
	}
	dst := src + ".bak"
	if err := os.WriteFile(dst, data, 0644); err != nil {
		log.Sugar().Errorf("state backup: write %s: %v", dst, err)
		return
	}
	log.Sugar().Infof("state backup: %s -> %s (%d bytes)", src, dst, len(data))
}

// CatalogReindexJob rebuilds the Elasticsearch product index from the
// catalog database and drops the cached query results. A no-op when
// Elasticsearch is not configured.
func CatalogReindexJob(args ...string) {
	log := logger.GetLogger()
	es, err := search.NewClient(log)
	if err != nil || es == nil {
		return
	}

	c := loadCatalog()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := search.IndexCatalog(ctx, es, c)
	if err != nil {
		log.Sugar().Errorf("catalog reindex: %v", err)
		return
	}
	// Same tag the query cache files results under
	cache.GetInstance().DeleteByTag("catalog")
	log.Sugar().Infof("catalog reindex: %d products indexed", n)
}

// loadCatalog reads the catalog database directly, falling back to the
// embedded seed. It cannot go through service/catalog: that package reads
// config, and config wires this one into CronJobs.
func loadCatalog() *catalog.Catalog {
	dsn := os.Getenv("CATALOG_DB")
	if dsn == "" {
		dsn = "ethnicshop.db"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return catalog.Default()
	}
	rows, err := productRepo.NewProductRepository(db).FetchAll()
	if err != nil || len(rows) == 0 {
		return catalog.Default()
	}
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToCatalog()
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return catalog.New(products)
}
