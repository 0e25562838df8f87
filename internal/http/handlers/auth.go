package handlers

import (
	"errors"
	"net/http"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/auth"
)

// AuthHandler serves the login endpoint for both roles.
type AuthHandler struct {
	logger logx.Logger
	uc     authUsecase
}

// NewAuthHandler wires an authUsecase into HTTP handlers.
func NewAuthHandler(logger logx.Logger, uc authUsecase) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{logger: logger, uc: uc}
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	var (
		sess       auth.Session
		err        error
		invalidMsg string
		deniedMsg  string
	)
	switch req.Role {
	case domain.RoleMatron:
		sess, err = h.uc.LoginMatron(r.Context(), req.Email, req.Password)
		invalidMsg, deniedMsg = "Invalid email or password.", "Invalid email or password."
	case domain.RoleStudent:
		sess, err = h.uc.LoginStudent(r.Context(), req.PhoneNumber, req.Password)
		invalidMsg, deniedMsg = "Phone number and password are required.", "Invalid phone number or password."
	default:
		h.fail(w, r, http.StatusBadRequest, "Invalid role.")
		return
	}

	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, loginResponse{
			Success: true,
			Token:   sess.Token,
			User:    userToResponse(sess.User),
		})
	case errors.Is(err, apperr.ErrInvalid):
		h.fail(w, r, http.StatusBadRequest, invalidMsg)
	case errors.Is(err, apperr.ErrUnauthorized):
		h.fail(w, r, http.StatusUnauthorized, deniedMsg)
	default:
		h.logger.Error("login",
			logx.String("req_id", reqID(r.Context())),
			logx.String("role", string(req.Role)),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.logger.Warn("login rejected",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
	)
	writeJSON(h.logger, w, r, status, loginResponse{Message: msg})
}
