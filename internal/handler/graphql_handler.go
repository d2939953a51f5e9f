package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
)

// GraphQLHandler serves the single GraphQL endpoint
type GraphQLHandler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewGraphQLHandler creates a new GraphQL handler
func NewGraphQLHandler(schema graphql.Schema, logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		logger: logger,
	}
}

// graphqlRequest is the standard GraphQL-over-HTTP request body
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query handles POST /graphql
func (h *GraphQLHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	if req.Query == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if result.HasErrors() {
		for _, gqlErr := range result.Errors {
			h.logger.Debug("graphql operation error",
				slog.String("operation", req.OperationName),
				slog.String("error", gqlErr.Message),
			)
		}
	}

	// Operation-level errors travel in the response body; the HTTP
	// status stays 200 per GraphQL-over-HTTP convention
	respondSuccess(w, result)
}
