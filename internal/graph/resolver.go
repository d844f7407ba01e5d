package graph

import (
	"context"
	"errors"
	"time"

	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/pkg/serverutils"
	"studynotes-be/internal/service"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
)

const logModule = "GraphQL"

var errInvalidID = apperror.NewSimple(400, "Invalid id")

// Resolver is the root resolver for both queries and mutations.
type Resolver struct {
	notes        service.INoteService
	interactions service.IInteractionService
	views        service.IViewService
	comments     service.ICommentService
	users        service.IUserService
	logger       logger.ILogger
}

func NewResolver(
	notes service.INoteService,
	interactions service.IInteractionService,
	views service.IViewService,
	comments service.ICommentService,
	users service.IUserService,
	log logger.ILogger,
) *Resolver {
	return &Resolver{
		notes:        notes,
		interactions: interactions,
		views:        views,
		comments:     comments,
		users:        users,
		logger:       log,
	}
}

func (r *Resolver) Hello() string {
	return "Hello world!"
}

// fail passes typed application errors through and hides everything else.
func (r *Resolver) fail(op string, err error) error {
	var apiErr *apperror.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var structured *apperror.StructuredError
	if errors.As(err, &structured) {
		return structured
	}
	r.logger.Error(logModule, "Resolver failed", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})
	return apperror.ErrInternal
}

func requireViewer(ctx context.Context) (string, error) {
	userId, ok := serverutils.ViewerFrom(ctx)
	if !ok {
		return "", apperror.ErrNotAuthenticated
	}
	return userId, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return parsed, nil
}

func boolArg(v *bool) bool {
	return v != nil && *v
}

func stringArg(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func idArg(v *graphql.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// isoTime renders times the way JavaScript's toISOString does.
func isoTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
