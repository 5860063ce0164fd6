package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ethnicshop.GO/config"
	catalogService "ethnicshop.GO/service/catalog"
)

var (
	importFile  string
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from a JSON file (or the embedded seed) into the catalog database",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		opts := catalogService.ImportOptions{BatchSize: importBatch}

		var res *catalogService.ImportResult
		if importFile == "" {
			fmt.Println("No file given, importing embedded seed catalog")
			res, err = catalogService.ImportSeed(db, opts)
		} else {
			f, ferr := os.Open(importFile)
			if ferr != nil {
				fmt.Printf("Failed to open JSON: %v\n", ferr)
				return
			}
			defer f.Close()
			res, err = catalogService.ImportProducts(db, f, opts)
		}
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
JSON rows:      %d
Imported:       %d
Skipped:        %d
Total time:     %s
=====================
`, res.TotalRows, res.Imported, res.Skipped, res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file path (embedded seed when omitted)")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 100, "Batch size for DB operations")
	rootCmd.AddCommand(importCmd)
}
