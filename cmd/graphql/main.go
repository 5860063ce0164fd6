// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	graphqlApi "ethnicshop.GO/api/graphql"
	"ethnicshop.GO/app"
	"ethnicshop.GO/checkout"
	"ethnicshop.GO/config"
	_ "ethnicshop.GO/custom"
	catalogService "ethnicshop.GO/service/catalog"
	"ethnicshop.GO/store"
)

func main() {
	_ = godotenv.Load()

	db, err := config.NewDB()
	if err != nil {
		log.Fatal("db:", err)
	}

	st := store.New(store.Options{StateFile: config.StateFilePath()})
	a := &app.App{
		Catalog:  catalogService.LoadOrSeed(db),
		Store:    st,
		Checkout: checkout.NewService(st, config.CheckoutDelay(), nil),
		DB:       db,
	}

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, a)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("EthnicShop GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
