package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"ethnicshop.GO/app"
	"ethnicshop.GO/catalog"
	"ethnicshop.GO/graphql"
	gqlmodels "ethnicshop.GO/graphql/models"
	"ethnicshop.GO/graphql/registry"
	catalogService "ethnicshop.GO/service/catalog"
)

// RootResolver is the root for graphql-go. Every query reads through the
// shared App, so GraphQL and REST always agree.
type RootResolver struct {
	App *app.App
}

// ProductsArgs matches the products query arguments. Nil facets fall back
// to the engine defaults.
type ProductsArgs struct {
	Query    *string
	Category *string
	Fabric   *string
	Color    *string
	Occasion *string
	Gender   *string
	MinPrice *int32
	MaxPrice *int32
	Sort     *string
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) []*gqlmodels.Product {
	filters := catalog.DefaultFilters()
	patch := catalog.FilterState{
		Category: deref(args.Category),
		Fabric:   deref(args.Fabric),
		Color:    deref(args.Color),
		Occasion: deref(args.Occasion),
		Gender:   deref(args.Gender),
	}
	if args.MinPrice != nil || args.MaxPrice != nil {
		pr := [2]int{0, 10000}
		if args.MinPrice != nil {
			pr[0] = int(*args.MinPrice)
		}
		if args.MaxPrice != nil {
			pr[1] = int(*args.MaxPrice)
		}
		patch.PriceRange = &pr
	}
	filters = filters.Merge(patch)

	sortBy := catalog.ParseSortOption(deref(args.Sort))
	results := catalogService.CachedSearch(r.App.Catalog, deref(args.Query), filters, sortBy)
	return gqlmodels.FromProducts(results)
}

type ProductArgs struct {
	ID int32
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) *gqlmodels.Product {
	p, ok := r.App.Catalog.ByIDInt(int(args.ID))
	if !ok {
		return nil
	}
	return gqlmodels.FromProduct(p)
}

func (r *RootResolver) Featured(ctx context.Context) []*gqlmodels.Product {
	return gqlmodels.FromProducts(r.App.Catalog.Featured())
}

func (r *RootResolver) Trending(ctx context.Context) []*gqlmodels.Product {
	return gqlmodels.FromProducts(r.App.Catalog.Trending())
}

func (r *RootResolver) Cart(ctx context.Context) *gqlmodels.CartSummary {
	return &gqlmodels.CartSummary{
		Items: gqlmodels.FromCartItems(r.App.Store.Cart()),
		Total: int32(r.App.Store.CartTotal()),
		Count: int32(r.App.Store.CartCount()),
	}
}

func (r *RootResolver) Wishlist(ctx context.Context) []*gqlmodels.Product {
	return gqlmodels.FromProducts(r.App.Store.Wishlist())
}

type ReviewsArgs struct {
	ProductID int32
}

func (r *RootResolver) Reviews(ctx context.Context, args ReviewsArgs) []*gqlmodels.Review {
	reviews := r.App.Store.ProductReviews(int(args.ProductID))
	out := make([]*gqlmodels.Review, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, gqlmodels.FromReview(rv))
	}
	return out
}

func (r *RootResolver) Orders(ctx context.Context) []*gqlmodels.Order {
	orders := r.App.Store.Orders()
	out := make([]*gqlmodels.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, gqlmodels.FromOrder(o))
	}
	return out
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(a *app.App) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{App: a}, gql.UseFieldResolvers())
}

func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
