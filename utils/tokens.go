package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "token"

// SessionToken is the claims bundle identifying a logged-in user. No expiry
// is set: a token stays valid until the signing secret is rotated.
type SessionToken struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

var (
	sessionSigner   *jwt.Signer
	sessionVerifier *jwt.Verifier
)

// InitializeSessions builds the signer and verifier once from the shared
// secret. The verifier also accepts the token from the session cookie, not
// just the Authorization header.
func InitializeSessions(secret string) {
	sessionSigner = jwt.NewSigner(jwt.HS256, []byte(secret), 0)

	sessionVerifier = jwt.NewVerifier(jwt.HS256, []byte(secret))
	sessionVerifier.Extractors = append(sessionVerifier.Extractors, func(ctx iris.Context) string {
		return ctx.GetCookie(SessionCookieName)
	})
}

func IssueSessionToken(id uint, email string) (string, error) {
	token, err := sessionSigner.Sign(SessionToken{ID: id, Email: email})
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func VerifySessionToken(raw string) (*SessionToken, error) {
	verified, err := sessionVerifier.VerifyToken([]byte(raw))
	if err != nil {
		return nil, err
	}

	var claims SessionToken
	if err := verified.Claims(&claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// SessionMiddleware rejects requests without a verifiable session token.
func SessionMiddleware() iris.Handler {
	return sessionVerifier.Verify(func() interface{} {
		return new(SessionToken)
	})
}
