package demoserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Address   *string `json:"address"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	switch {
	case !validate.Email(email):
		writeText(w, http.StatusBadRequest, "Invalid email")
		return
	case len(first) < validate.MinNameLen:
		writeText(w, http.StatusBadRequest, "First name must be at least 2 characters")
		return
	case len(last) < validate.MinNameLen:
		writeText(w, http.StatusBadRequest, "Last name must be at least 2 characters")
		return
	case len(req.Password) < validate.MinPasswordLen:
		writeText(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "Server error")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		writeText(w, http.StatusConflict, "Email already registered")
		return
	}

	u := &user{
		ID:           s.nextUserID,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
	}
	if req.Address != nil {
		u.Address = strings.TrimSpace(*req.Address)
	}
	s.nextUserID++
	s.users[email] = u

	s.log.Info("registered user", zap.String("email", email), zap.Int("id", u.ID))
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "email": email})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeText(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": s.issueToken(u),
		"user": map[string]any{
			"id":         u.ID,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"email":      u.Email,
			"address":    u.Address,
		},
	})
}
