package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ethnicshop.GO/config"
	"ethnicshop.GO/store"
)

var stateShowCmd = &cobra.Command{
	Use:   "state:show",
	Short: "Print a summary of the persisted shopper state snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.StateFilePath()
		snap, err := store.LoadSnapshot(path)
		if err != nil {
			fmt.Printf("Snapshot at %s is unreadable: %v\n", path, err)
			return
		}
		if snap == nil {
			fmt.Printf("No snapshot at %s\n", path)
			return
		}
		reviewCount := 0
		for _, rs := range snap.Reviews {
			reviewCount += len(rs)
		}
		fmt.Printf("Snapshot: %s\n", path)
		fmt.Printf("  cart lines: %d\n", len(snap.Cart))
		fmt.Printf("  wishlist:   %d\n", len(snap.Wishlist))
		fmt.Printf("  reviews:    %d (on %d products)\n", reviewCount, len(snap.Reviews))
		fmt.Printf("  orders:     %d\n", len(snap.Orders))
	},
}

func init() {
	rootCmd.AddCommand(stateShowCmd)
}
