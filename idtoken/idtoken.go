package idtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when the id_token cannot be decoded.
var ErrMalformedToken = errors.New("malformed id token")

// Claims is the subset of id_token claims the engine needs to build an
// account record.
type Claims struct {
	Subject           string
	ObjectID          string
	TenantID          string
	PreferredUsername string
	Name              string
	Issuer            string
	Audience          []string
	IssuedAt          time.Time
	ExpiresAt         time.Time
}

// HomeAccountID derives the cache key for the account: object id and
// tenant id joined with a dot, falling back to the subject when the
// object id claim is absent.
func (c *Claims) HomeAccountID() string {
	id := c.ObjectID
	if id == "" {
		id = c.Subject
	}
	if c.TenantID == "" {
		return id
	}
	return id + "." + c.TenantID
}

// Parse decodes the id_token payload into Claims.
func Parse(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMalformedToken
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{
		Subject:           stringClaim(mapClaims, "sub"),
		ObjectID:          stringClaim(mapClaims, "oid"),
		TenantID:          stringClaim(mapClaims, "tid"),
		PreferredUsername: stringClaim(mapClaims, "preferred_username"),
		Name:              stringClaim(mapClaims, "name"),
		Issuer:            stringClaim(mapClaims, "iss"),
	}

	if aud, err := mapClaims.GetAudience(); err == nil {
		claims.Audience = aud
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if claims.Subject == "" && claims.ObjectID == "" {
		return nil, fmt.Errorf("%w: no subject claim", ErrMalformedToken)
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)
	return value
}
