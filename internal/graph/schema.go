// Package graph exposes the services as a GraphQL schema.
package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the schema and binds it to r. It panics if a resolver
// method is missing, which surfaces at startup.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, r, graphql.MaxDepth(12))
}
