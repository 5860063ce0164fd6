package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"

	"ethnicshop.GO/catalog"
)

// IndexCatalog writes every catalog product into the search index, one
// document per product keyed by id. Documents are replaced wholesale.
func IndexCatalog(ctx context.Context, es *elasticsearch.Client, c *catalog.Catalog) (int, error) {
	indexed := 0
	for _, p := range c.Products() {
		data, err := json.Marshal(p)
		if err != nil {
			return indexed, fmt.Errorf("marshal product %d: %w", p.ID, err)
		}
		res, err := es.Index(
			IndexName,
			bytes.NewReader(data),
			es.Index.WithDocumentID(strconv.Itoa(p.ID)),
			es.Index.WithContext(ctx),
		)
		if err != nil {
			return indexed, fmt.Errorf("index product %d: %w", p.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return indexed, fmt.Errorf("index product %d: %s", p.ID, res.Status())
		}
		indexed++
	}
	return indexed, nil
}
