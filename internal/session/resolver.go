package session

import (
	"context"
	"net/http"
	"strings"

	"marketplace-service/internal/apperr"
	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"
)

const NotAuthenticatedMessage = "Not authenticated"

type TokenStore interface {
	Lookup(ctx context.Context, token string) (uint64, bool, error)
}

var _ TokenStore = (*Store)(nil)

// Resolver turns a bearer token into the user it was issued to.
type Resolver struct {
	tokens TokenStore
	users  repository.UserRepository
}

func NewResolver(tokens TokenStore, users repository.UserRepository) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

func (r *Resolver) Resolve(req *http.Request) (*domain.User, error) {
	token := BearerToken(req)
	if token == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, NotAuthenticatedMessage)
	}

	ctx := req.Context()
	userID, ok, err := r.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, apperr.Internal("resolve session", err)
	}
	if !ok {
		return nil, apperr.New(apperr.KindUnauthenticated, NotAuthenticatedMessage)
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("load session user", err)
	}
	if user == nil || user.Status == domain.UserStatusBanned {
		return nil, apperr.New(apperr.KindUnauthenticated, NotAuthenticatedMessage)
	}
	return user, nil
}

func BearerToken(req *http.Request) string {
	auth := req.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
