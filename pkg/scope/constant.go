package scope

import "time"

// TokenExpirationDuration is the lifetime of an issued access token.
const TokenExpirationDuration = 2 * time.Hour

// PayloadCtxKey is the context key for the JWT payload.
type PayloadCtxKey struct{}

// ScopeCtxKey is the context key for the workspace scope.
type ScopeCtxKey struct{}
