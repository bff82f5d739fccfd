package middleware

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier verifies HS256 session tokens against the process-wide secret.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens. Issuer and
// audience are only enforced when non-empty.
func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer, audience: audience}
}

func (v *JWTVerifier) Verify(token string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !tkn.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return &Claims{Username: username, Role: role}, nil
}
