package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"
)

type IGraphQLController interface {
	RegisterRoutes(r fiber.Router)
	Execute(ctx *fiber.Ctx) error
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type graphQLController struct {
	schema *graphql.Schema
}

func NewGraphQLController(schema *graphql.Schema) IGraphQLController {
	return &graphQLController{
		schema: schema,
	}
}

func (c *graphQLController) RegisterRoutes(r fiber.Router) {
	r.Post("/graphql", c.Execute)
	r.Get("/graphql", c.Execute)
}

func (c *graphQLController) Execute(ctx *fiber.Ctx) error {
	var req graphQLRequest
	if ctx.Method() == fiber.MethodGet {
		req.Query = ctx.Query("query")
		req.OperationName = ctx.Query("operationName")
		if vars := ctx.Query("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "variables must be a JSON object")
			}
		}
	} else if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid GraphQL request body")
	}

	if req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query is required")
	}

	res := c.schema.Exec(ctx.UserContext(), req.Query, req.OperationName, req.Variables)
	return ctx.JSON(res)
}
