package scope

// Manager verifies and issues scoped JWT tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}
