package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// tokenQueryParam is the fallback token source enabled by
// config.Server.AllowQueryToken.
const tokenQueryParam = "token"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header (or, when enabled,
// the "token" query parameter), verifies it via [service.TokenService.Verify]
// and, on success, stores the token subject in the request context with
// [utils.WithSubject] before delegating to the next handler.
//
// Every rejection is answered with the same 401 "unauthenticated" body. The
// reason (missing token, malformed, bad signature, expired) is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.tokenFromRequest(r)
		if err != nil {
			log.Info().Err(err).Msg("request without usable token")
			http.Error(w, app.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Str("reason", rejectionReason(err)).Msg("token rejected")
			http.Error(w, app.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		// Store the authenticated subject in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithSubject(ctx, token.Subject)

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("subject", token.Subject)
		})
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest prefers the Authorization header. The query parameter is
// consulted only when the header is absent and the fallback is enabled.
func (h *Handler) tokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
		}
		return tokenString, nil
	}

	if h.allowQueryToken {
		if tokenString := r.URL.Query().Get(tokenQueryParam); tokenString != "" {
			return tokenString, nil
		}
	}

	return "", ErrEmptyAuthorizationHeader
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, service.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
