package scope

import "github.com/golang-jwt/jwt"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.StandardClaims
	UserID      string `json:"sub"`
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}
