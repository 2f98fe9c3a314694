package demoserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.mu.Lock()
	resp := map[string]string{
		"first_name":     u.FirstName,
		"last_name":      u.LastName,
		"email":          u.Email,
		"shipping_phone": u.ShippingPhone,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// handleUpdateAccount applies a partial update; the editor saves one field
// at a time but any subset is accepted.
func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate every field before touching the record, so a bad field in a
	// multi-field payload cannot leave a partial update behind.
	applies := make([]func(), 0, len(fields))
	for field, value := range fields {
		switch field {
		case "first_name":
			v := strings.TrimSpace(value)
			applies = append(applies, func() { u.FirstName = v })
		case "last_name":
			v := strings.TrimSpace(value)
			applies = append(applies, func() { u.LastName = v })
		case "email":
			email := strings.ToLower(strings.TrimSpace(value))
			if !validate.Email(email) {
				writeText(w, http.StatusBadRequest, "Invalid email")
				return
			}
			if other, exists := s.users[email]; exists && other != u {
				writeText(w, http.StatusConflict, "Duplicate entry: email already in use")
				return
			}
			applies = append(applies, func() {
				delete(s.users, u.Email)
				u.Email = email
				s.users[email] = u
			})
		case "shipping_phone":
			v := strings.TrimSpace(value)
			applies = append(applies, func() { u.ShippingPhone = v })
		case "password":
			if len(value) < validate.MinPasswordLen {
				writeText(w, http.StatusBadRequest, "Password must be at least 8 characters")
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
			if err != nil {
				writeText(w, http.StatusInternalServerError, "Server error")
				return
			}
			applies = append(applies, func() { u.PasswordHash = hash })
		default:
			writeText(w, http.StatusBadRequest, "unknown field: "+field)
			return
		}
	}
	for _, apply := range applies {
		apply()
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
