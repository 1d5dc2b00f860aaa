package handlers

import (
	"net/http"

	"classpoints/internal/models"
	"classpoints/internal/security"
	"classpoints/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	auth   *service.AuthService
	tokens *security.TokenIssuer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, tokens *security.TokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  publicUser  `json:"user"`
}

// publicUser is an account as returned to clients: no password field
type publicUser struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	Role        models.Role     `json:"role"`
	ClassDay    models.ClassDay `json:"classDay,omitempty"`
	ChildrenIDs []string        `json:"childrenIds,omitempty"`
}

func toPublicUser(u *models.User) publicUser {
	return publicUser{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
		ClassDay:    u.ClassDay,
		ChildrenIDs: u.ChildrenIDs,
	}
}

// Login authenticates a username/password pair and issues a bearer token.
// Every failure mode returns the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toPublicUser(user)})
}
