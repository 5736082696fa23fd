package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// DefaultTokenTTL is the lifetime of an issued bearer token.
const DefaultTokenTTL = 3 * time.Hour

// TokenIssuer produces signed, time-bounded bearer tokens for verified
// identities. Issuance is stateless; the token is the only artifact.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer constructs an issuer with the process-wide signing key.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// WithNow overrides the issuer clock for testing.
func (i *TokenIssuer) WithNow(fn func() time.Time) {
	if fn != nil {
		i.now = fn
	}
}

// Issue signs a claim set for the given administrator using HS256.
func (i *TokenIssuer) Issue(adm Administrator) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"email": adm.Email,
		"role":  string(adm.Role),
		"jti":   uuid.NewString(),
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// TokenVerifier validates bearer tokens against the issuance key.
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewTokenVerifier constructs a verifier sharing the issuer's symmetric key.
func NewTokenVerifier(secret []byte) *TokenVerifier {
	return &TokenVerifier{secret: secret, now: time.Now}
}

// WithNow overrides the verifier clock for testing.
func (v *TokenVerifier) WithNow(fn func() time.Time) {
	if fn != nil {
		v.now = fn
	}
}

// Verify checks signature and expiry and extracts the embedded claims.
// Expiry is reported as shared.ErrTokenExpired; every other failure,
// including malformed input and signature mismatch, is shared.ErrTokenInvalid.
func (v *TokenVerifier) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return v.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, shared.ErrTokenExpired
		}
		return Claims{}, shared.ErrTokenInvalid
	}
	if !parsed.Valid {
		return Claims{}, shared.ErrTokenInvalid
	}

	mapClaims, ok := parsed.Claims.(*jwt.MapClaims)
	if !ok {
		return Claims{}, shared.ErrTokenInvalid
	}
	return extractClaims(mapClaims)
}

func extractClaims(claims *jwt.MapClaims) (Claims, error) {
	email, ok := (*claims)["email"].(string)
	if !ok || email == "" {
		return Claims{}, shared.ErrTokenInvalid
	}
	rawRole, ok := (*claims)["role"].(string)
	if !ok {
		return Claims{}, shared.ErrTokenInvalid
	}
	role, err := ParseRole(rawRole)
	if err != nil {
		return Claims{}, shared.ErrTokenInvalid
	}

	out := Claims{Email: email, Role: role}
	if jti, ok := (*claims)["jti"].(string); ok {
		out.TokenID = jti
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
