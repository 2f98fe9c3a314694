package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
)

type AccountAPI interface {
	Get(ctx context.Context) (api.Account, error)
	Update(ctx context.Context, fields map[string]string) error
}

type SessionReader interface {
	RequireToken() (string, error)
}

// AccountController backs the login & security editor: it loads the current
// account record and saves one field at a time.
type AccountController struct {
	accounts AccountAPI
	session  SessionReader
	log      *zap.Logger
}

func NewAccountController(accounts AccountAPI, sess SessionReader, log *zap.Logger) *AccountController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountController{accounts: accounts, session: sess, log: log}
}

type AccountView struct {
	FirstName     string
	LastName      string
	Email         string
	ShippingPhone string
	// Password is never prefilled.
}

type AccountLoadResult struct {
	View     AccountView
	Message  Message
	Redirect string
}

func (ac *AccountController) Load(ctx context.Context) AccountLoadResult {
	if _, err := ac.session.RequireToken(); err != nil {
		return AccountLoadResult{
			Message:  errorMsg("Please sign in to edit your account."),
			Redirect: PageSignIn,
		}
	}

	acct, err := ac.accounts.Get(ctx)
	if err != nil {
		if redirectToSignIn(err) {
			return AccountLoadResult{
				Message:  errorMsg("Session expired. Please log in again."),
				Redirect: PageSignIn,
			}
		}
		return AccountLoadResult{Message: failureMessage(err, "Could not load account information.")}
	}

	return AccountLoadResult{View: AccountView{
		FirstName:     acct.FirstName,
		LastName:      acct.LastName,
		Email:         acct.Email,
		ShippingPhone: acct.ShippingPhone,
	}}
}

type FieldUpdateResult struct {
	FieldErrors validate.FieldErrors
	Message     Message
	Redirect    string
}

var accountFieldLabels = map[string]string{
	"first_name":     "First name",
	"last_name":      "Last name",
	"email":          "Email",
	"shipping_phone": "Phone number",
	"password":       "Password",
}

// UpdateField validates and saves a single account field.
func (ac *AccountController) UpdateField(ctx context.Context, field, value string) FieldUpdateResult {
	if fe := validate.AccountField(field, value); !fe.Ok() {
		return FieldUpdateResult{FieldErrors: fe}
	}

	if _, err := ac.session.RequireToken(); err != nil {
		return FieldUpdateResult{
			Message:  errorMsg("Please sign in to edit your account."),
			Redirect: PageSignIn,
		}
	}

	sent := value
	if field != "password" {
		sent = strings.TrimSpace(value)
	}

	if err := ac.accounts.Update(ctx, map[string]string{field: sent}); err != nil {
		if redirectToSignIn(err) {
			return FieldUpdateResult{
				Message:  errorMsg("Session expired. Please log in again."),
				Redirect: PageSignIn,
			}
		}
		if field == "email" && isDuplicateError(err) {
			return FieldUpdateResult{Message: errorMsg("That email is already in use.")}
		}
		label := accountFieldLabels[field]
		return FieldUpdateResult{Message: failureMessage(err, "Failed to update "+strings.ToLower(label)+".")}
	}

	ac.log.Info("account field updated", zap.String("field", field))
	return FieldUpdateResult{Message: successMsg(accountFieldLabels[field] + " updated successfully.")}
}

func isDuplicateError(err error) bool {
	var re *api.RequestError
	if !errors.As(err, &re) {
		return false
	}
	return re.Status == 409 ||
		strings.Contains(re.Body, "1062") ||
		strings.Contains(re.Body, "Duplicate")
}
