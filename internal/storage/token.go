package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// checkToken inspects a bearer token before a request is issued. Session
// issuance belongs to the auth collaborator, so the claims are read without
// signature verification; the only client-side concern is failing fast on a
// token that is already expired instead of burning a round trip on a
// guaranteed 401. Opaque (non-JWT) tokens pass through untouched.
func checkToken(token string) error {
	if token == "" {
		return fmt.Errorf("missing bearer token")
	}
	if strings.Count(token, ".") != 2 {
		return nil
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Not parseable as a JWT; let the server decide.
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("bearer token expired at %s", exp.Format(time.RFC3339))
	}
	return nil
}
