package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ethnicshop.GO/config"
	"ethnicshop.GO/search"
	catalogService "ethnicshop.GO/service/catalog"
)

var indexCmd = &cobra.Command{
	Use:   "catalog:index",
	Short: "Push the catalog into the Elasticsearch product index",
	Run: func(cmd *cobra.Command, args []string) {
		es, err := search.NewClient(zap.NewNop())
		if err != nil {
			fmt.Printf("Elasticsearch connection failed: %v\n", err)
			return
		}
		if es == nil {
			fmt.Println("ES_URL not set, nothing to index")
			return
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		c := catalogService.LoadOrSeed(db)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		n, err := search.IndexCatalog(ctx, es, c)
		if err != nil {
			fmt.Printf("Indexing failed: %v\n", err)
			return
		}
		fmt.Printf("Indexed %d products into %s\n", n, search.IndexName)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
