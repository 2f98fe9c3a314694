package demoserver

import (
	"encoding/json"
	"net/http"

	"github.com/MahirAsef999/E-Buy/internal/catalog"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.List())
}

func (s *Server) cartItemsLocked(token string) ([]orderItem, float64) {
	items := make([]orderItem, 0)
	subtotal := 0.0
	for _, p := range catalog.List() {
		qty, ok := s.carts[token][p.ID]
		if !ok {
			continue
		}
		items = append(items, orderItem{ProductID: p.ID, Qty: qty, Price: p.Price})
		subtotal += p.Price * float64(qty)
	}
	return items, subtotal
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	t := demoToken(r)

	s.mu.Lock()
	items, subtotal := s.cartItemsLocked(t)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "subtotal": subtotal})
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, ok := catalog.Price(req.ProductID); !ok {
		writeText(w, http.StatusBadRequest, "invalid product")
		return
	}
	qty := req.Qty
	if qty < 1 {
		qty = 1
	}

	t := demoToken(r)
	s.mu.Lock()
	if s.carts[t] == nil {
		s.carts[t] = make(map[string]int)
	}
	s.carts[t][req.ProductID] += qty
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	pid := chi.URLParam(r, "productID")
	var req struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeText(w, http.StatusBadRequest, "invalid json")
		return
	}

	t := demoToken(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[t][pid]; !ok {
		writeText(w, http.StatusNotFound, "not in cart")
		return
	}
	qty := req.Qty
	if qty < 1 {
		qty = 1
	}
	s.carts[t][pid] = qty
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	pid := chi.URLParam(r, "productID")
	t := demoToken(r)

	s.mu.Lock()
	delete(s.carts[t], pid)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
