package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
)

type PaymentMethodAPI interface {
	List(ctx context.Context) ([]api.PaymentMethod, error)
	Get(ctx context.Context, id int) (api.PaymentMethod, error)
	Create(ctx context.Context, in api.PaymentMethodInput) error
	Update(ctx context.Context, id int, in api.PaymentMethodInput) error
	Delete(ctx context.Context, id int) error
}

// PaymentMethodsController backs the saved-cards page. Edit state is an
// explicit EditSession value handed out by BeginEdit and consumed by Submit
// or dropped on cancel; there is no ambient "currently editing" flag.
type PaymentMethodsController struct {
	methods PaymentMethodAPI
	session SessionReader
	log     *zap.Logger

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewPaymentMethodsController(methods PaymentMethodAPI, sess SessionReader, log *zap.Logger) *PaymentMethodsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentMethodsController{methods: methods, session: sess, log: log, now: time.Now}
}

// EditSession identifies the card an in-progress edit belongs to, with the
// form prefilled from the stored card (masked number, CVV never echoed).
type EditSession struct {
	ID   int
	Form api.PaymentMethodInput
}

type PaymentMethodListResult struct {
	Methods  []api.PaymentMethod
	Message  Message
	Redirect string
}

func (pc *PaymentMethodsController) List(ctx context.Context) PaymentMethodListResult {
	if _, err := pc.session.RequireToken(); err != nil {
		return PaymentMethodListResult{
			Message:  errorMsg("Please log in to manage payment methods"),
			Redirect: PageSignIn,
		}
	}

	methods, err := pc.methods.List(ctx)
	if err != nil {
		if redirectToSignIn(err) {
			return PaymentMethodListResult{
				Message:  errorMsg("Session expired. Please log in again."),
				Redirect: PageSignIn,
			}
		}
		return PaymentMethodListResult{Message: failureMessage(err, "Failed to load payment methods.")}
	}
	return PaymentMethodListResult{Methods: methods}
}

// BeginEdit loads a stored card into an edit session.
func (pc *PaymentMethodsController) BeginEdit(ctx context.Context, id int) (EditSession, Message, error) {
	method, err := pc.methods.Get(ctx, id)
	if err != nil {
		return EditSession{}, errorMsg("Failed to load payment method details"), err
	}
	return EditSession{
		ID: id,
		Form: api.PaymentMethodInput{
			CardType:       method.CardType,
			CardholderName: method.CardholderName,
			CardNumber:     method.CardNumber,
			ExpiryDate:     method.ExpiryDate,
			CVV:            "",
			BillingZip:     method.BillingZip,
			IsDefault:      method.IsDefault,
		},
	}, Message{}, nil
}

type PaymentMethodSubmitResult struct {
	FieldErrors validate.FieldErrors
	Message     Message
	Redirect    string
}

// Submit creates a card, or updates the one the edit session points at.
func (pc *PaymentMethodsController) Submit(ctx context.Context, edit *EditSession, in api.PaymentMethodInput) PaymentMethodSubmitResult {
	form := validate.PaymentMethodForm{
		CardType:       in.CardType,
		CardholderName: in.CardholderName,
		CardNumber:     in.CardNumber,
		ExpiryDate:     in.ExpiryDate,
		CVV:            in.CVV,
		BillingZip:     in.BillingZip,
		IsDefault:      in.IsDefault,
	}
	fe := form.Validate(pc.now())
	// On edit an untouched masked number means "keep the stored card";
	// the backend recognizes the mask, so only reject it on create.
	if edit != nil && strings.Contains(in.CardNumber, "*") {
		delete(fe, "cardNumber")
	}
	if !fe.Ok() {
		return PaymentMethodSubmitResult{FieldErrors: fe}
	}

	in.CardNumber = strings.ReplaceAll(in.CardNumber, " ", "")

	var err error
	if edit != nil {
		err = pc.methods.Update(ctx, edit.ID, in)
	} else {
		err = pc.methods.Create(ctx, in)
	}
	if err != nil {
		if redirectToSignIn(err) {
			return PaymentMethodSubmitResult{
				Message:  errorMsg("Session expired. Please log in again."),
				Redirect: PageSignIn,
			}
		}
		return PaymentMethodSubmitResult{Message: failureMessage(err, "An error occurred. Please try again.")}
	}

	if edit != nil {
		pc.log.Info("payment method updated", zap.Int("id", edit.ID))
		return PaymentMethodSubmitResult{Message: successMsg("Payment method updated successfully!")}
	}
	pc.log.Info("payment method added")
	return PaymentMethodSubmitResult{Message: successMsg("Payment method added successfully!")}
}

type PaymentMethodDeleteResult struct {
	Deleted bool
	Message Message
}

// Delete removes a card after explicit confirmation.
func (pc *PaymentMethodsController) Delete(ctx context.Context, id int, confirm func() bool) PaymentMethodDeleteResult {
	if confirm == nil || !confirm() {
		return PaymentMethodDeleteResult{}
	}
	if err := pc.methods.Delete(ctx, id); err != nil {
		if api.IsStatus(err, http.StatusNotFound) {
			return PaymentMethodDeleteResult{Message: errorMsg("Payment method not found")}
		}
		return PaymentMethodDeleteResult{Message: failureMessage(err, "Failed to delete payment method")}
	}
	pc.log.Info("payment method deleted", zap.Int("id", id))
	return PaymentMethodDeleteResult{Deleted: true, Message: successMsg("Payment method deleted successfully!")}
}

// FormatCardNumber regroups a typed card number into blocks of four digits,
// mirroring the input normalizer on the payment form.
func FormatCardNumber(v string) string {
	digits := digitsOnly(v)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiryInput inserts the slash after the month as the user types.
func FormatExpiryInput(v string) string {
	digits := digitsOnly(v)
	if len(digits) <= 2 {
		return digits
	}
	end := len(digits)
	if end > 4 {
		end = 4
	}
	return digits[:2] + "/" + digits[2:end]
}

func digitsOnly(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
