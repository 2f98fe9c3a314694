package demoserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// paymentMethodInput uses a pointer for isDefault so a partial update that
// omits the flag is distinguishable from an explicit false.
type paymentMethodInput struct {
	CardType       string `json:"cardType"`
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	BillingZip     string `json:"billingZip"`
	IsDefault      *bool  `json:"isDefault"`
}

func (s *Server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.mu.Lock()
	methods := s.userMethodsLocked(u.ID)
	out := make([]map[string]any, 0, len(methods))
	for _, m := range methods {
		out = append(out, map[string]any{
			"id":             m.ID,
			"cardType":       m.CardType,
			"cardholderName": m.CardholderName,
			"lastFourDigits": m.LastFour,
			"expiryDate":     m.ExpiryDate,
			"billingZip":     m.BillingZip,
			"isDefault":      m.IsDefault,
			"createdAt":      m.CreatedAt.UTC().Format("2006-01-02T15:04:05"),
		})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

// userMethodsLocked returns the user's cards, default first then newest
// first, matching the production ordering.
func (s *Server) userMethodsLocked(userID int) []*paymentMethod {
	out := make([]*paymentMethod, 0)
	for _, m := range s.methods {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Server) handleCreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in paymentMethodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	number := strings.ReplaceAll(in.CardNumber, " ", "")
	if in.CardType == "" || in.CardholderName == "" || number == "" ||
		in.ExpiryDate == "" || in.CVV == "" || in.BillingZip == "" {
		writeText(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if len(number) < 4 {
		writeText(w, http.StatusBadRequest, "Invalid card number")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := &paymentMethod{
		ID:             s.nextCardID,
		UserID:         u.ID,
		CardType:       in.CardType,
		CardholderName: in.CardholderName,
		CardNumber:     number,
		LastFour:       number[len(number)-4:],
		ExpiryDate:     in.ExpiryDate,
		CVV:            in.CVV,
		BillingZip:     in.BillingZip,
		IsDefault:      in.IsDefault != nil && *in.IsDefault,
		CreatedAt:      s.now(),
	}
	s.nextCardID++
	if m.IsDefault {
		s.clearDefaultLocked(u.ID)
	}
	s.methods[m.ID] = m

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Payment method added successfully",
		"id":      m.ID,
	})
}

// clearDefaultLocked unsets isDefault on every card of the user, keeping
// the at-most-one-default invariant when a new default is written.
func (s *Server) clearDefaultLocked(userID int) {
	for _, m := range s.methods {
		if m.UserID == userID {
			m.IsDefault = false
		}
	}
}

func (s *Server) findMethod(r *http.Request, userID int) (*paymentMethod, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return nil, false
	}
	m, ok := s.methods[id]
	if !ok || m.UserID != userID {
		return nil, false
	}
	return m, true
}

func (s *Server) handleGetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.findMethod(r, u.ID)
	if !ok {
		writeText(w, http.StatusNotFound, "Payment method not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":             m.ID,
		"cardType":       m.CardType,
		"cardholderName": m.CardholderName,
		"cardNumber":     maskCardNumber(m.CardNumber),
		"lastFourDigits": m.LastFour,
		"expiryDate":     m.ExpiryDate,
		"billingZip":     m.BillingZip,
		"isDefault":      m.IsDefault,
	})
}

// maskCardNumber hides all but the last four digits and regroups in fours.
func maskCardNumber(number string) string {
	if len(number) < 4 {
		return number
	}
	masked := strings.Repeat("*", len(number)-4) + number[len(number)-4:]
	var groups []string
	for i := 0; i < len(masked); i += 4 {
		end := i + 4
		if end > len(masked) {
			end = len(masked)
		}
		groups = append(groups, masked[i:end])
	}
	return strings.Join(groups, " ")
}

func (s *Server) handleUpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in paymentMethodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.findMethod(r, u.ID)
	if !ok {
		writeText(w, http.StatusNotFound, "Payment method not found")
		return
	}

	if in.CardType != "" {
		m.CardType = in.CardType
	}
	if in.CardholderName != "" {
		m.CardholderName = in.CardholderName
	}
	// A masked number means the stored card is kept.
	number := strings.ReplaceAll(in.CardNumber, " ", "")
	if number != "" && !strings.Contains(number, "*") {
		if len(number) < 4 {
			writeText(w, http.StatusBadRequest, "Invalid card number")
			return
		}
		m.CardNumber = number
		m.LastFour = number[len(number)-4:]
	}
	if in.ExpiryDate != "" {
		m.ExpiryDate = in.ExpiryDate
	}
	if in.CVV != "" {
		m.CVV = in.CVV
	}
	if in.BillingZip != "" {
		m.BillingZip = in.BillingZip
	}
	// An omitted flag keeps the current default state, like the other
	// empty-means-keep fields.
	if in.IsDefault != nil {
		if *in.IsDefault && !m.IsDefault {
			s.clearDefaultLocked(u.ID)
			m.IsDefault = true
		} else if !*in.IsDefault {
			m.IsDefault = false
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment method updated successfully"})
}

func (s *Server) handleDeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.findMethod(r, u.ID)
	if !ok {
		writeText(w, http.StatusNotFound, "Payment method not found")
		return
	}
	delete(s.methods, m.ID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment method deleted successfully"})
}

func (s *Server) handleDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	if u == nil {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.methods {
		if m.UserID == u.ID && m.IsDefault {
			writeJSON(w, http.StatusOK, map[string]any{
				"id":             m.ID,
				"cardType":       m.CardType,
				"cardholderName": m.CardholderName,
				"lastFourDigits": m.LastFour,
				"expiryDate":     m.ExpiryDate,
			})
			return
		}
	}
	writeText(w, http.StatusNotFound, "No default payment method set")
}
