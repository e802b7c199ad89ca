package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// maxBodyBytes caps register and login request bodies.
const maxBodyBytes = 1 << 20

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials
	if err := utils.ReadJSON(w, r, &credentials, maxBodyBytes); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return credentials, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, registeredUser.Info(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Stringer("credentials", credentials).Msg("login attempt")

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Subject).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}

// info returns the profile named in the path. The subject is put into the
// context by the auth middleware.
func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := utils.GetSubjectFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	userInfo, err := h.services.AuthService.GetUserInfo(ctx, subject, chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, userInfo, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(app.MsgHealthy))
}
