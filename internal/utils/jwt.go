package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// Reasons returned by [ValidateAndParseJWTToken]. Every error it returns
// wraps exactly one of them.
var (
	ErrJWTMalformed        = errors.New("token is malformed")
	ErrJWTSignatureInvalid = errors.New("token signature is invalid")
	ErrJWTExpired          = errors.New("token is expired")
)

// signingMethod is the only algorithm tokens are issued and accepted with.
var signingMethod = jwt.SigningMethodHS256

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Claim times have one-second precision; the returned [models.Token]
// carries the truncated values exactly as encoded.
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", "alice", time.Now(), time.Hour, []byte("secret"))
func GenerateJWTToken(issuer, subject string, now time.Time, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Subject:      subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
		SignedString: tokenString,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Checks run in this order and stop at the first failure:
//   - three dot-separated segments with a decodable signature (ErrJWTMalformed)
//   - HMAC over header.payload matches signKey (ErrJWTSignatureInvalid);
//     nothing from the header or claims is trusted before this passes
//   - header alg is HS256 (ErrJWTSignatureInvalid)
//   - claims decode and iss equals tokenIssuer (ErrJWTMalformed)
//   - exp is present (ErrJWTMalformed) and now < exp + leeway (ErrJWTExpired)
//   - sub is non-empty (ErrJWTMalformed)
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, key, "my-service", time.Now(), 0)
//	if errors.Is(err, utils.ErrJWTExpired) {
//	    // ask the client to log in again
//	}
func ValidateAndParseJWTToken(tokenString string, signKey []byte, tokenIssuer string, now time.Time, leeway time.Duration) (models.Token, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return models.Token{}, fmt.Errorf("%w: token contains an invalid number of segments", ErrJWTMalformed)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	signature, err := parser.DecodeSegment(parts[2])
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: could not decode signature: %w", ErrJWTMalformed, err)
	}

	if err = signingMethod.Verify(parts[0]+"."+parts[1], signature, signKey); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTSignatureInvalid, err)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrJWTSignatureInvalid, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTMalformed, err)
	}

	if claims.Issuer != tokenIssuer {
		return models.Token{}, fmt.Errorf("%w: unexpected issuer %q", ErrJWTMalformed, claims.Issuer)
	}

	if claims.ExpiresAt == nil {
		return models.Token{}, fmt.Errorf("%w: missing exp claim", ErrJWTMalformed)
	}
	if !now.Before(claims.ExpiresAt.Add(leeway)) {
		return models.Token{}, fmt.Errorf("%w: expired at %s", ErrJWTExpired, claims.ExpiresAt.Format(time.RFC3339))
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrJWTMalformed)
	}

	token := models.Token{
		Subject:      claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
		SignedString: tokenString,
	}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", errors.New("invalid authorization header")
	}

	return token, nil
}
