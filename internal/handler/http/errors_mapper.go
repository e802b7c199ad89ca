package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUnauthenticated:       http.StatusUnauthorized,
	service.ErrTokenMalformed:        http.StatusUnauthorized,
	service.ErrTokenSignatureInvalid: http.StatusUnauthorized,
	service.ErrTokenExpired:          http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err. Server
// failures and token problems get a fixed body; details stay in the log.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return app.MsgInvalidLoginPassword
		}
		return app.MsgUnauthenticated
	case http.StatusForbidden:
		return app.MsgForbidden
	case http.StatusNotFound:
		return app.MsgUserNotFound
	case http.StatusConflict:
		return app.MsgUserAlreadyExists
	default:
		return app.MsgInternalServerError
	}
}

// writeError logs err with the request logger and answers with the status
// mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err, status), status)
}
