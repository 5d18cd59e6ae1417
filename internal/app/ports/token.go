package ports

type TokenClaims struct {
	UserID   string
	Username string
}

// TokenIssuer signs and verifies the bearer tokens the client carries.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
	Verify(token string) (TokenClaims, error)
}
