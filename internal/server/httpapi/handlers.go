package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

func (s *HTTPServer) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
			return
		}
		s.logger.Error(r.Context(), "sign-in failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.setSessionCookie(w, res.SessionID)
	writeJSON(w, http.StatusOK, authResponse{User: res.User, Token: res.Token})
}

func (s *HTTPServer) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailAlreadyInUse):
			writeError(w, http.StatusConflict, common.ErrEmailAlreadyInUse.Error())
		case errors.Is(err, common.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, common.ErrInvalidCredentials.Error())
		default:
			s.logger.Error(r.Context(), "sign-up failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	res, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		// The account exists; let the client sign in explicitly.
		s.logger.Warn(r.Context(), "post-signup sign-in failed", "error", err.Error())
		writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
		return
	}

	s.setSessionCookie(w, res.SessionID)
	writeJSON(w, http.StatusCreated, authResponse{User: res.User, Token: res.Token})
}

func (s *HTTPServer) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(r.Context(), s.sessionIDFromRequest(r)); err != nil {
		s.logger.Error(r.Context(), "sign-out failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r.Context()))
}

func (s *HTTPServer) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	s.updateUser(w, r, currentUser(r.Context()).ID)
}

func (s *HTTPServer) handleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	s.updateUser(w, r, chi.URLParam(r, "userID"))
}

func (s *HTTPServer) updateUser(w http.ResponseWriter, r *http.Request, userID string) {
	var req updateUserRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := s.users.UpdateProfile(r.Context(), userID, models.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailAlreadyInUse):
			writeError(w, http.StatusConflict, common.ErrEmailAlreadyInUse.Error())
		case errors.Is(err, common.ErrUserNotFound):
			writeError(w, http.StatusNotFound, common.ErrUserNotFound.Error())
		case errors.Is(err, common.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, common.ErrInvalidCredentials.Error())
		default:
			s.logger.Error(r.Context(), "profile update failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
