package graphql

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"ethnicshop.GO/api"
	"ethnicshop.GO/app"
	"ethnicshop.GO/graphqlserver"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RegisterGraphQLRoutes serves /graphql and /playground on the public root.
func RegisterGraphQLRoutes(e *echo.Echo, a *app.App) {
	schema, err := graphqlserver.NewSchema(a)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema (for tests with mocks).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema) {
	registerRoutes(e, schema)
}

func registerRoutes(e *echo.Echo, schema *graphql.Schema) {
	handler := graphqlserver.Handler(schema)
	e.POST("/graphql", echo.WrapHandler(handler))
	e.GET("/graphql", echo.WrapHandler(handler))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
