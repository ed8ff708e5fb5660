package handlers

import (
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/labstack/echo/v4"

	"github.com/bizmandi/storefront/ent"
	"github.com/bizmandi/storefront/graph"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/registration"
	"github.com/bizmandi/storefront/pkg/session"
)

// GraphQLHandler creates GraphQL server handler
type GraphQLHandler struct {
	resolver *graph.Resolver
}

// NewGraphQLHandler creates a new GraphQL handler
func NewGraphQLHandler(
	db *ent.Client,
	registrationService *registration.Service,
	sessions *session.Store,
	filterTypes map[string]catalog.FacetKind,
	jwtSecret string,
	jwtExpirationHours int,
) *GraphQLHandler {
	resolver := &graph.Resolver{
		DB:                  db,
		RegistrationService: registrationService,
		Sessions:            sessions,
		FilterTypes:         filterTypes,
		JWTSecret:           jwtSecret,
		JWTExpirationHours:  jwtExpirationHours,
	}

	return &GraphQLHandler{
		resolver: resolver,
	}
}

// GraphQLEndpoint handles GraphQL queries
func (h *GraphQLHandler) GraphQLEndpoint(c echo.Context) error {
	srv := handler.NewDefaultServer(graph.NewExecutableSchema(graph.Config{Resolvers: h.resolver}))

	// Wrap the GraphQL handler
	srv.ServeHTTP(c.Response(), c.Request())
	return nil
}

// Playground serves the GraphQL Playground interface
func (h *GraphQLHandler) Playground(c echo.Context) error {
	pg := playground.Handler("GraphQL Playground", "/graphql")
	pg.ServeHTTP(c.Response(), c.Request())
	return nil
}
