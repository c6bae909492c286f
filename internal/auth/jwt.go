// Package auth issues and validates the HS256 tokens that guard the admin API.
package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role accepted on admin routes.
const RoleAdmin = "admin"

// AdminClaims are the claims carried by an admin token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAdminToken signs a token for subject that expires after ttl.
func IssueAdminToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("admin token secret is empty")
	}
	if subject == "" {
		return "", errors.New("admin token subject is empty")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("admin token ttl must be positive, got %s", ttl)
	}

	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateAdminToken checks signature, expiry, issuer and role and returns
// the claims. Failures are AUTHENTICATION_ERROR or FORBIDDEN AppErrors.
func ValidateAdminToken(tokenString, secret, issuer string) (*AdminClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, opts...)
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("token_expired", "Admin session has expired")
		}
		return nil, apperrors.Unauthorized("invalid_token", "Invalid admin token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.Subject == "" {
		return nil, apperrors.Unauthorized("invalid_claims", "Invalid token structure")
	}
	if claims.Role != RoleAdmin {
		return nil, apperrors.Forbidden("Admin access required", "")
	}
	return claims, nil
}
