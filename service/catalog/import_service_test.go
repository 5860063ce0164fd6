package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"ethnicshop.GO/catalog"
)

func serviceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestImportSeed(t *testing.T) {
	db := serviceTestDB(t)

	res, err := ImportSeed(db, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportSeed: %v", err)
	}
	if res.Imported != 8 || res.Skipped != 0 {
		t.Errorf("imported = %d, skipped = %d, want 8/0", res.Imported, res.Skipped)
	}
}

func TestImportProducts_SkipsBadRows(t *testing.T) {
	db := serviceTestDB(t)

	payload := `[
		{"id": 1, "name": "Good Saree", "price": 1000, "originalPrice": 1500},
		{"id": 0, "name": "No ID", "price": 500, "originalPrice": 900},
		{"id": 3, "name": "Inverted Price", "price": 2000, "originalPrice": 100}
	]`
	res, err := ImportProducts(db, strings.NewReader(payload), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.TotalRows != 3 || res.Imported != 1 || res.Skipped != 2 {
		t.Errorf("result = %+v, want 3 rows, 1 imported, 2 skipped", res)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", res.Warnings)
	}
}

func TestImportProducts_BadPayload(t *testing.T) {
	db := serviceTestDB(t)

	if _, err := ImportProducts(db, strings.NewReader("not json"), ImportOptions{}); err == nil {
		t.Fatal("want error for invalid payload")
	}
}

func TestImportProducts_UpsertReplaces(t *testing.T) {
	db := serviceTestDB(t)

	first := `[{"id": 1, "name": "Old Name", "price": 1000, "originalPrice": 1500}]`
	second := `[{"id": 1, "name": "New Name", "price": 1200, "originalPrice": 1500}]`
	if _, err := ImportProducts(db, strings.NewReader(first), ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := ImportProducts(db, strings.NewReader(second), ImportOptions{}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	c, err := LoadCatalog(db)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
	p, _ := c.ByIDInt(1)
	if p.Name != "New Name" || p.Price != 1200 {
		t.Errorf("row not replaced: %+v", p)
	}
}

func TestLoadCatalog_RoundTripsSeed(t *testing.T) {
	db := serviceTestDB(t)

	if _, err := ImportSeed(db, ImportOptions{}); err != nil {
		t.Fatalf("ImportSeed: %v", err)
	}
	c, err := LoadCatalog(db)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	seed := catalog.SeedProducts()
	if c.Len() != len(seed) {
		t.Fatalf("len = %d, want %d", c.Len(), len(seed))
	}
	for _, want := range seed {
		got, ok := c.ByIDInt(want.ID)
		if !ok {
			t.Fatalf("product %d missing after round trip", want.ID)
		}
		if got.Name != want.Name || got.Price != want.Price || len(got.Sizes) != len(want.Sizes) {
			t.Errorf("product %d = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestEnsureSeeded(t *testing.T) {
	db := serviceTestDB(t)

	n, err := EnsureSeeded(db)
	if err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	if n != 8 {
		t.Errorf("first run imported %d, want 8", n)
	}

	n, err = EnsureSeeded(db)
	if err != nil {
		t.Fatalf("EnsureSeeded second run: %v", err)
	}
	if n != 0 {
		t.Errorf("second run imported %d, want 0", n)
	}
}

func TestLoadOrSeed_FallsBackToEmbedded(t *testing.T) {
	c := LoadOrSeed(nil)
	if c.Len() != 8 {
		t.Errorf("len = %d, want embedded seed of 8", c.Len())
	}
}
