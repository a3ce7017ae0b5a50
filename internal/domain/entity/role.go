package entity

import "context"

// Principal is the caller attached to a request by the auth middleware.
type Principal struct {
	Name string
	Role string
}

// Role names
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// IsAdmin reports whether the principal may mutate the catalog.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
