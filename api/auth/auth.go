package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// AccessTokenDuration is the lifetime of a standard access token.
	AccessTokenDuration = 7 * 24 * time.Hour

	// AccessTokenCookieName is the cookie carrying the access token.
	AccessTokenCookieName = "bookmate.access-token"

	// KeyID is the value expected in the "kid" header of every token.
	KeyID = "v1"

	// Issuer is the registered issuer claim.
	Issuer = "bookmate"
)

type ClaimsMessage struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a HS256 token for the given user.
func GenerateAccessToken(username string, userID int, expirationTime time.Time, secret []byte) (string, error) {
	registeredClaims := jwt.RegisteredClaims{
		Issuer:   Issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
		Subject:  strconv.Itoa(userID),
	}
	if !expirationTime.IsZero() {
		registeredClaims.ExpiresAt = jwt.NewNumericDate(expirationTime)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClaimsMessage{
		Name:             username,
		RegisteredClaims: registeredClaims,
	})
	token.Header["kid"] = KeyID

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return signed, nil
}
