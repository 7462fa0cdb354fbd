package auth

import (
	"context"
	"fmt"
	"strings"

	"boardapp/app/apperrors"
)

// Guard authenticates inbound requests from their Authorization header.
type Guard struct {
	tokens TokenVerifier
}

// NewGuard returns a Guard verifying tokens with tokens.
func NewGuard(tokens TokenVerifier) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticate extracts the bearer token from header and returns the subject
// it was issued for. Token verification errors are returned unchanged.
func (g *Guard) Authenticate(header string) (string, error) {
	token, ok := BearerToken(header)
	if !ok {
		return "", ErrMissingToken
	}
	return g.tokens.Verify(token)
}

// BearerToken returns the token of a "Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthorizeMutation succeeds only when the acting subject authored the resource.
func AuthorizeMutation(subject, authorID string) error {
	if subject == "" || subject != authorID {
		return fmt.Errorf("%w: only the author may modify this post", apperrors.ErrForbidden)
	}
	return nil
}

type subjectKey struct{}

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFrom returns the authenticated subject stored in ctx.
func SubjectFrom(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok && subject != ""
}
