package search

import (
	"io"
	"os"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// IndexName is the Elasticsearch index holding catalog products.
const IndexName = "ethnicshop_products"

// NewClient connects to Elasticsearch using ES_URL / ES_USER / ES_PASSWORD.
// Returns (nil, nil) when ES_URL is unset: the search index is optional and
// the in-memory query engine stays the source of truth.
func NewClient(log *zap.Logger) (*elasticsearch.Client, error) {
	url := os.Getenv("ES_URL")
	if url == "" {
		return nil, nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ES_USER"),
		Password:  os.Getenv("ES_PASSWORD"),
	})
	if err != nil {
		return nil, err
	}

	res, err := client.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Warn("elasticsearch info failed", zap.ByteString("body", body))
		return nil, nil
	}

	log.Info("connected to elasticsearch", zap.String("url", url))
	return client, nil
}
