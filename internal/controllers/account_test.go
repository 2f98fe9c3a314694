package controllers

import (
	"context"
	"testing"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	getFunc     func(ctx context.Context) (api.Account, error)
	updateFunc  func(ctx context.Context, fields map[string]string) error
	updateCalls int
}

func (f *fakeAccounts) Get(ctx context.Context) (api.Account, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx)
	}
	return api.Account{}, nil
}

func (f *fakeAccounts) Update(ctx context.Context, fields map[string]string) error {
	f.updateCalls++
	if f.updateFunc != nil {
		return f.updateFunc(ctx, fields)
	}
	return nil
}

func TestAccountLoad_SignedOutRedirects(t *testing.T) {
	ac := NewAccountController(&fakeAccounts{}, &fakeSession{}, nil)

	result := ac.Load(context.Background())

	assert.Equal(t, PageSignIn, result.Redirect)
	assert.Equal(t, KindError, result.Message.Kind)
}

func TestAccountLoad_FillsView(t *testing.T) {
	accounts := &fakeAccounts{
		getFunc: func(ctx context.Context) (api.Account, error) {
			return api.Account{
				FirstName:     "Jane",
				LastName:      "Doe",
				Email:         "jane@example.com",
				ShippingPhone: "5551234567",
			}, nil
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	result := ac.Load(context.Background())

	assert.Empty(t, result.Redirect)
	assert.Equal(t, "Jane", result.View.FirstName)
	assert.Equal(t, "5551234567", result.View.ShippingPhone)
}

func TestAccountLoad_ExpiredTokenRedirects(t *testing.T) {
	accounts := &fakeAccounts{
		getFunc: func(ctx context.Context) (api.Account, error) {
			return api.Account{}, &api.RequestError{Status: 401, Body: "Unauthorized"}
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "stale"}, nil)

	result := ac.Load(context.Background())

	assert.Equal(t, PageSignIn, result.Redirect)
}

func TestUpdateField_SendsSingleField(t *testing.T) {
	var got map[string]string
	accounts := &fakeAccounts{
		updateFunc: func(ctx context.Context, fields map[string]string) error {
			got = fields
			return nil
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	result := ac.UpdateField(context.Background(), "first_name", " Jane ")

	assert.Equal(t, KindSuccess, result.Message.Kind)
	assert.Equal(t, "First name updated successfully.", result.Message.Text)
	assert.Equal(t, map[string]string{"first_name": "Jane"}, got)
}

func TestUpdateField_PasswordNotTrimmed(t *testing.T) {
	var got map[string]string
	accounts := &fakeAccounts{
		updateFunc: func(ctx context.Context, fields map[string]string) error {
			got = fields
			return nil
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	ac.UpdateField(context.Background(), "password", "space pass1")

	assert.Equal(t, "space pass1", got["password"])
}

func TestUpdateField_ValidationBlocksNetworkCall(t *testing.T) {
	accounts := &fakeAccounts{}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	result := ac.UpdateField(context.Background(), "email", "not-an-email")

	require.False(t, result.FieldErrors.Ok())
	assert.Zero(t, accounts.updateCalls)
}

func TestUpdateField_DuplicateEmail(t *testing.T) {
	accounts := &fakeAccounts{
		updateFunc: func(ctx context.Context, fields map[string]string) error {
			return &api.RequestError{Status: 409, Body: "Duplicate entry: email already in use"}
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	result := ac.UpdateField(context.Background(), "email", "taken@example.com")

	assert.Equal(t, "That email is already in use.", result.Message.Text)
}

func TestUpdateField_MySQLDuplicateCodeRecognized(t *testing.T) {
	accounts := &fakeAccounts{
		updateFunc: func(ctx context.Context, fields map[string]string) error {
			return &api.RequestError{Status: 500, Body: "Error 1062: Duplicate entry"}
		},
	}
	ac := NewAccountController(accounts, &fakeSession{token: "tok"}, nil)

	result := ac.UpdateField(context.Background(), "email", "taken@example.com")

	assert.Equal(t, "That email is already in use.", result.Message.Text)
}

func TestAddressSave_TrimsAndClearsNonUSFields(t *testing.T) {
	cache := &fakeAddressCache{}
	ac := NewAddressController(cache, nil)

	result := ac.Save(session.Address{
		Street:   " 1 Main St ",
		City:     "Springfield",
		State:    "IL",
		Province: "Ontario",
		Country:  "Canada",
		Zip:      " 62701 ",
	})

	assert.Equal(t, KindSuccess, result.Message.Kind)
	assert.Equal(t, "1 Main St", cache.saved.Street)
	assert.Equal(t, "62701", cache.saved.Zip)
	assert.Empty(t, cache.saved.Province)
	assert.Empty(t, cache.saved.Country)
}

func TestAddressSave_KeepsProvinceForNonUS(t *testing.T) {
	cache := &fakeAddressCache{}
	ac := NewAddressController(cache, nil)

	ac.Save(session.Address{
		Street:   "12 High St",
		City:     "Toronto",
		State:    session.StateNonUS,
		Province: "Ontario",
		Country:  "Canada",
		Zip:      "M5V 2T6",
	})

	assert.Equal(t, "Ontario", cache.saved.Province)
	assert.Equal(t, "Canada", cache.saved.Country)
}

func TestAddressLoad_FlagsNonUS(t *testing.T) {
	cache := &fakeAddressCache{
		stored: session.Address{State: session.StateNonUS, Country: "Canada"},
		ok:     true,
	}
	ac := NewAddressController(cache, nil)

	view := ac.Load()

	assert.True(t, view.NonUS)
	assert.Equal(t, "Canada", view.Address.Country)
}

type fakeAddressCache struct {
	stored session.Address
	ok     bool
	saved  session.Address
}

func (f *fakeAddressCache) LoadAddress() (session.Address, bool) {
	return f.stored, f.ok
}

func (f *fakeAddressCache) SaveAddress(a session.Address) error {
	f.saved = a
	return nil
}
