package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/service"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/internal/utils"
	"github.com/avoronin/go-note-keeper/models"
)

// accessTokenCookie is the cookie carrying the JWT session token. The auth
// middleware reads it before falling back to the Authorization header.
const accessTokenCookie = "access_token"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if _, err := h.services.AuthService.SignUp(ctx, user); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, "invalid data provided")
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, http.StatusConflict, "email already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	// registration does not log the user in: no token, no cookie
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "user registered successfully",
	}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, "invalid data provided")
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong email or password")
			writeError(w, http.StatusUnauthorized, "wrong email or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.SignInResponse{
		Response: models.Response{Success: true, Message: "login successful"},
		Token:    token.String(),
		User:     foundUser.Sanitized(),
	}, http.StatusOK)
}

// signout clears the session cookie. The JWT itself stays valid until it
// expires; signout only removes the client's copy.
func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "user logged out",
	}, http.StatusOK)
}

// setSessionCookie attaches the session token to the response. SameSite=None
// with Secure lets browser clients on another origin send the cookie back.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
