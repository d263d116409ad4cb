package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what we can read out of a platform token without the
// server's secret. Display only, never trusted for authorization.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken parses the (quote-stripped) token as an unverified JWT.
// The platform is free to hand out opaque tokens, so a parse failure
// just means there is nothing to show.
func InspectToken(tok string) (TokenInfo, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(CleanToken(tok), jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, false
	}
	var info TokenInfo
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
