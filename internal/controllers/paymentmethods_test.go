package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMethods struct {
	listFunc    func(ctx context.Context) ([]api.PaymentMethod, error)
	getFunc     func(ctx context.Context, id int) (api.PaymentMethod, error)
	createFunc  func(ctx context.Context, in api.PaymentMethodInput) error
	updateFunc  func(ctx context.Context, id int, in api.PaymentMethodInput) error
	deleteFunc  func(ctx context.Context, id int) error
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeMethods) List(ctx context.Context) ([]api.PaymentMethod, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeMethods) Get(ctx context.Context, id int) (api.PaymentMethod, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return api.PaymentMethod{}, nil
}

func (f *fakeMethods) Create(ctx context.Context, in api.PaymentMethodInput) error {
	f.createCalls++
	if f.createFunc != nil {
		return f.createFunc(ctx, in)
	}
	return nil
}

func (f *fakeMethods) Update(ctx context.Context, id int, in api.PaymentMethodInput) error {
	f.updateCalls++
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, in)
	}
	return nil
}

func (f *fakeMethods) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return nil
}

func validCardInput() api.PaymentMethodInput {
	return api.PaymentMethodInput{
		CardType:       "Visa",
		CardholderName: "Jane Doe",
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "12/28",
		CVV:            "123",
		BillingZip:     "62701",
	}
}

func TestPaymentMethodsList_SignedOutRedirects(t *testing.T) {
	pc := NewPaymentMethodsController(&fakeMethods{}, &fakeSession{}, nil)

	result := pc.List(context.Background())

	assert.Equal(t, PageSignIn, result.Redirect)
	assert.Equal(t, "Please log in to manage payment methods", result.Message.Text)
}

func TestPaymentMethodsList_Success(t *testing.T) {
	methods := &fakeMethods{
		listFunc: func(ctx context.Context) ([]api.PaymentMethod, error) {
			return []api.PaymentMethod{
				{ID: 2, CardType: "Visa", LastFourDigits: "1111", IsDefault: true},
				{ID: 1, CardType: "Amex", LastFourDigits: "0005"},
			}, nil
		},
	}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)

	result := pc.List(context.Background())

	assert.Empty(t, result.Redirect)
	require.Len(t, result.Methods, 2)
	assert.True(t, result.Methods[0].IsDefault)
}

func TestPaymentMethodsSubmit_ExpiredCardNeverReachesBackend(t *testing.T) {
	methods := &fakeMethods{}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)
	pc.now = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }

	in := validCardInput()
	in.ExpiryDate = "01/20"
	result := pc.Submit(context.Background(), nil, in)

	require.False(t, result.FieldErrors.Ok())
	assert.Equal(t, "Card has expired. Please enter a valid expiry date.", result.FieldErrors["expiryDate"])
	assert.Zero(t, methods.createCalls)
	assert.Zero(t, methods.updateCalls)
}

func TestPaymentMethodsSubmit_CreateStripsSpaces(t *testing.T) {
	var got api.PaymentMethodInput
	methods := &fakeMethods{
		createFunc: func(ctx context.Context, in api.PaymentMethodInput) error {
			got = in
			return nil
		},
	}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)
	pc.now = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }

	result := pc.Submit(context.Background(), nil, validCardInput())

	assert.Equal(t, "Payment method added successfully!", result.Message.Text)
	assert.Equal(t, "4111111111111111", got.CardNumber)
}

func TestPaymentMethodsSubmit_MaskedNumberAllowedOnEdit(t *testing.T) {
	methods := &fakeMethods{}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)
	pc.now = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }

	in := validCardInput()
	in.CardNumber = "**** **** **** 1111"
	edit := &EditSession{ID: 4, Form: in}

	result := pc.Submit(context.Background(), edit, in)

	assert.True(t, result.FieldErrors.Ok())
	assert.Equal(t, 1, methods.updateCalls)
	assert.Equal(t, "Payment method updated successfully!", result.Message.Text)
}

func TestPaymentMethodsSubmit_MaskedNumberRejectedOnCreate(t *testing.T) {
	methods := &fakeMethods{}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)
	pc.now = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }

	in := validCardInput()
	in.CardNumber = "**** **** **** 1111"

	result := pc.Submit(context.Background(), nil, in)

	require.False(t, result.FieldErrors.Ok())
	assert.Contains(t, result.FieldErrors, "cardNumber")
	assert.Zero(t, methods.createCalls)
}

func TestPaymentMethodsSubmit_SessionExpiredRedirects(t *testing.T) {
	methods := &fakeMethods{
		createFunc: func(ctx context.Context, in api.PaymentMethodInput) error {
			return &api.RequestError{Status: 401, Body: "Unauthorized"}
		},
	}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "stale"}, nil)
	pc.now = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }

	result := pc.Submit(context.Background(), nil, validCardInput())

	assert.Equal(t, PageSignIn, result.Redirect)
}

func TestBeginEdit_PrefillNeverEchoesCVV(t *testing.T) {
	methods := &fakeMethods{
		getFunc: func(ctx context.Context, id int) (api.PaymentMethod, error) {
			return api.PaymentMethod{
				ID:             id,
				CardType:       "Visa",
				CardholderName: "Jane Doe",
				CardNumber:     "**** **** **** 1111",
				ExpiryDate:     "12/28",
				BillingZip:     "62701",
				IsDefault:      true,
			}, nil
		},
	}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)

	edit, msg, err := pc.BeginEdit(context.Background(), 4)

	require.NoError(t, err)
	assert.Empty(t, msg.Text)
	assert.Equal(t, 4, edit.ID)
	assert.Equal(t, "**** **** **** 1111", edit.Form.CardNumber)
	assert.Empty(t, edit.Form.CVV)
	assert.True(t, edit.Form.IsDefault)
}

func TestPaymentMethodsDelete_RequiresConfirmation(t *testing.T) {
	methods := &fakeMethods{}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)

	result := pc.Delete(context.Background(), 4, func() bool { return false })

	assert.False(t, result.Deleted)
	assert.Zero(t, methods.deleteCalls)

	result = pc.Delete(context.Background(), 4, func() bool { return true })

	assert.True(t, result.Deleted)
	assert.Equal(t, 1, methods.deleteCalls)
}

func TestPaymentMethodsDelete_NotFound(t *testing.T) {
	methods := &fakeMethods{
		deleteFunc: func(ctx context.Context, id int) error {
			return &api.RequestError{Status: 404, Body: "Payment method not found"}
		},
	}
	pc := NewPaymentMethodsController(methods, &fakeSession{token: "tok"}, nil)

	result := pc.Delete(context.Background(), 99, func() bool { return true })

	assert.False(t, result.Deleted)
	assert.Equal(t, "Payment method not found", result.Message.Text)
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111-1111-1111-1111"))
	assert.Equal(t, "411", FormatCardNumber("411"))
	assert.Empty(t, FormatCardNumber("no digits"))
}

func TestFormatExpiryInput(t *testing.T) {
	assert.Equal(t, "1", FormatExpiryInput("1"))
	assert.Equal(t, "12", FormatExpiryInput("12"))
	assert.Equal(t, "12/2", FormatExpiryInput("122"))
	assert.Equal(t, "12/28", FormatExpiryInput("1228"))
	assert.Equal(t, "12/28", FormatExpiryInput("12/28"))
	assert.Equal(t, "12/28", FormatExpiryInput("12289"))
}
