package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/example/modernblog/internal/model"
	"github.com/example/modernblog/internal/state"
)

// Login installs the submitted user record into the session. The record
// is accepted as-is — including the admin and premium flags — and echoed
// back in a signed token the client can re-present after its session
// store is gone. The token identifies, it does not authorize.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	storeFrom(r).Dispatch(state.SetUser{User: &user})

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     userTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"user":      user,
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout clears the session user and drops the token cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	storeFrom(r).Dispatch(state.SetUser{User: nil})

	http.SetCookie(w, &http.Cookie{
		Name:     userTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the profile page's subject: the current user, if any.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := storeFrom(r).GetState().User
	if user == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
