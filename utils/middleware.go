package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// SessionClaims returns the verified session claims for the current
// request. Only valid behind SessionMiddleware.
func SessionClaims(ctx iris.Context) *SessionToken {
	return jwt.Get(ctx).(*SessionToken)
}
