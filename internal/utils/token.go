package utils // package utils provides helpers for session tokens, passwords and booking references

import (
    "errors" // sentinel for rejected tokens
    "time"   // expiry calculation

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by ParseSessionToken for any token that
// cannot be trusted: bad signature, malformed payload, wrong signing
// method or past its expiry.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken is a signed HS256 JWT binding a username to an expiry.
// The Token field contains the serialized JWT string; Exp stores the
// UTC expiration time.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a username. It
// takes the signing secret, the username and a TTL in minutes, and
// returns the signed token together with its expiration time. The
// claims are: subject (sub) = username, expiration (exp) and issued
// at (iat).
func NewSessionToken(secret, username string, ttlMin int) (SessionToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub": username,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies signature, signing method and expiry of
// a serialized session token and returns the username it is bound
// to. Expiry is checked by the library as part of claim validation.
func ParseSessionToken(secret, token string) (string, error) {
    parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !parsed.Valid {
        return "", ErrInvalidToken
    }
    claims, ok := parsed.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrInvalidToken
    }
    sub, ok := claims["sub"].(string)
    if !ok || sub == "" {
        return "", ErrInvalidToken
    }
    return sub, nil
}
