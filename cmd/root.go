package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ethnicshop",
	Short: "Ethnic-wear storefront toolbox",
	Long:  "CLI for the ethnic-wear storefront: catalog import, search indexing, cron jobs and state inspection.",
}

// Execute runs the root command with all registered subcommands.
func Execute() {
	printBanner()
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func printBanner() {
	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("EthnicShop", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
}
