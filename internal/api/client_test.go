package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MahirAsef999/E-Buy/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestCall_SetsDefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "student1", staticTokens{}, srv.Client(), nil)
	require.NoError(t, c.Call(context.Background(), http.MethodGet, "/cart", nil, nil))

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "student1", got.Get("X-Demo-Token"))
	assert.Empty(t, got.Get("Authorization"))
}

func TestCall_AddsBearerWhenSignedIn(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "student1", staticTokens{token: "tok-abc"}, srv.Client(), nil)
	require.NoError(t, c.Call(context.Background(), http.MethodGet, "/orders", nil, nil))

	assert.Equal(t, "Bearer tok-abc", got.Get("Authorization"))
}

func TestCall_NonTwoHundredBecomesRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("Email already registered"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "student1", staticTokens{}, srv.Client(), nil)
	err := c.Call(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)

	require.Error(t, err)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "Email already registered", re.Body)
	assert.Equal(t, "Email already registered", re.Error())
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestCall_EmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil, srv.Client(), nil)
	err := c.Call(context.Background(), http.MethodGet, "/cart", nil, nil)

	require.Error(t, err)
	assert.Equal(t, "request failed with status 500", err.Error())
}

func TestCall_DecodesJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items":    []map[string]any{{"productId": "TV", "price": 399.0, "qty": 2}},
			"subtotal": 798.0,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "student1", nil, srv.Client(), nil)
	var out cart.Cart
	require.NoError(t, c.Call(context.Background(), http.MethodGet, "/cart", nil, &out))

	require.Len(t, out.Items, 1)
	assert.Equal(t, "TV", out.Items[0].ProductID)
	assert.Equal(t, 2, out.Items[0].Qty)
	assert.InDelta(t, 798.0, out.Subtotal, 1e-9)
}

func TestCall_JoinsPathOntoBase(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api", "student1", nil, srv.Client(), nil)
	require.NoError(t, c.Call(context.Background(), http.MethodGet, "/payment-methods/default", nil, nil))

	assert.Equal(t, "/api/payment-methods/default", gotPath)
}

func TestCall_EncodesRequestBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "student1", nil, srv.Client(), nil)
	body := map[string]any{"productId": "TV", "qty": 2}
	require.NoError(t, c.Call(context.Background(), http.MethodPost, "/cart/items", body, nil))

	assert.Equal(t, "TV", got["productId"])
	assert.InDelta(t, 2.0, got["qty"].(float64), 1e-9)
}

func TestNewClient_PanicsOnInvalidBaseURL(t *testing.T) {
	assert.Panics(t, func() {
		NewClient("http://bad url\x7f", "student1", nil, nil, nil)
	})
}
