// Package controllers contains one command handler per storefront page.
// Each handler validates its input, talks to the backend through the typed
// API clients, and returns a view model or a user-visible message; the
// terminal adapter in cmd/storefront does the actual rendering.
package controllers

import (
	"errors"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/session"
)

// Pages a controller can send the user to.
const (
	PageSignIn       = "signin"
	PageMain         = "main"
	PageOrderHistory = "orders"
)

type MessageKind string

const (
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
	KindMuted   MessageKind = "muted"
)

// Message is a single user-visible line rendered near the form.
type Message struct {
	Kind MessageKind
	Text string
}

func successMsg(text string) Message { return Message{Kind: KindSuccess, Text: text} }
func errorMsg(text string) Message   { return Message{Kind: KindError, Text: text} }

// failureMessage turns a network failure into the inline message the page
// shows: the response body text when the backend sent one, otherwise the
// page's own fallback wording.
func failureMessage(err error, fallback string) Message {
	var re *api.RequestError
	if errors.As(err, &re) && strings.TrimSpace(re.Body) != "" {
		return errorMsg(strings.TrimSpace(re.Body))
	}
	return errorMsg(fallback)
}

// redirectToSignIn reports whether err means the session is missing and the
// user has to be sent to the sign-in page.
func redirectToSignIn(err error) bool {
	return errors.Is(err, session.ErrUnauthenticated) || api.IsStatus(err, 401)
}
