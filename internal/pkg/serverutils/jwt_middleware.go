package serverutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type viewerKey struct{}

// WithViewer attaches the authenticated user id to ctx.
func WithViewer(ctx context.Context, userId string) context.Context {
	return context.WithValue(ctx, viewerKey{}, userId)
}

// ViewerFrom returns the authenticated user id, if any.
func ViewerFrom(ctx context.Context) (string, bool) {
	userId, ok := ctx.Value(viewerKey{}).(string)
	return userId, ok && userId != ""
}

// AuthMiddleware resolves the bearer token into a viewer when one is present and
// valid. Requests without a usable token continue anonymously; resolvers decide
// whether a viewer is required.
func AuthMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Next()
		}
		tokenStr := strings.TrimSpace(authHeader[7:])

		userId, err := ParseToken(tokenStr, secret)
		if err != nil {
			return ctx.Next()
		}

		ctx.Locals("user_id", userId)
		ctx.SetUserContext(WithViewer(ctx.UserContext(), userId))
		return ctx.Next()
	}
}

// ParseToken validates an HS256 token and returns its subject.
func ParseToken(tokenStr, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}

	if userId, ok := claims["user_id"].(string); ok && userId != "" {
		return userId, nil
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("token has no subject")
}

// SignToken issues an HS256 token for userId. Used by tooling and tests.
func SignToken(userId, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"sub":     userId,
	})
	return token.SignedString([]byte(secret))
}
