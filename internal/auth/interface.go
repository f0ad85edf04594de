package auth

// TokenVerifier validates a bearer token and yields the stable user ID it
// was issued for. The middleware stays agnostic to whether tokens are signed
// locally or by an external identity provider.
type TokenVerifier interface {
	// VerifyToken returns the user ID for a valid token, or an error if
	// the token is invalid, expired, or mis-signed.
	VerifyToken(tokenString string) (string, error)

	// Close releases any resources held by the verifier.
	Close() error
}
