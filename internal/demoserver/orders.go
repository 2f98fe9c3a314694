package demoserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	t := demoToken(r)
	u := s.authenticatedUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	items, total := s.cartItemsLocked(t)
	if len(items) == 0 {
		writeText(w, http.StatusBadRequest, "cart empty")
		return
	}

	o := &storedOrder{
		ID:        strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		User:      t,
		Items:     items,
		Total:     total,
		Status:    "pending",
		CreatedAt: s.now().UTC(),
	}
	if u != nil {
		o.UserID = u.ID
	}
	s.orders[o.ID] = o
	s.carts[t] = make(map[string]int)

	s.log.Info("order created", zap.String("order_id", o.ID), zap.Float64("total", total))
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	u := s.authenticatedUser(r)
	t := demoToken(r)

	s.mu.Lock()
	out := make([]*storedOrder, 0)
	for _, o := range s.orders {
		if u != nil {
			if o.UserID == u.ID {
				out = append(out, o)
			}
		} else if o.User == t {
			out = append(out, o)
		}
	}
	s.mu.Unlock()

	// Newest first, like the production query.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMockPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
		Outcome string `json:"outcome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[req.OrderID]
	if !ok {
		writeText(w, http.StatusNotFound, "order not found")
		return
	}

	if req.Outcome == "" || req.Outcome == "success" {
		o.Status = "paid"
	} else {
		o.Status = "failed"
	}
	writeJSON(w, http.StatusOK, o)
}
