package scope

import "errors"

// New creates a new JWT scope Manager with the given HMAC secret key.
func New(secretKey string) (Manager, error) {
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	return &implManager{secretKey: secretKey}, nil
}
