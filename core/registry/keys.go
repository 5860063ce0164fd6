package registry

// Core keys for GlobalRegistry and RequestRegistry.
const (
	// RequestRegistry keys (per-request)
	KeyRequestStart = "request_start"

	// Extension registries stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryRoutes  = "registry:routes"
	KeyRegistryGraphQL = "registry:graphql"
)
