package controllers

import (
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/session"
	"go.uber.org/zap"
)

type AddressCache interface {
	LoadAddress() (session.Address, bool)
	SaveAddress(a session.Address) error
}

// AddressController backs the address editor. The address lives only in the
// local cache for now; the backend address column is written at
// registration time.
type AddressController struct {
	cache AddressCache
	log   *zap.Logger
}

func NewAddressController(cache AddressCache, log *zap.Logger) *AddressController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AddressController{cache: cache, log: log}
}

type AddressView struct {
	Address session.Address
	// NonUS controls whether province/country fields are shown.
	NonUS bool
}

func (ac *AddressController) Load() AddressView {
	a, _ := ac.cache.LoadAddress()
	return AddressView{Address: a, NonUS: a.State == session.StateNonUS}
}

type AddressSaveResult struct {
	Message Message
}

func (ac *AddressController) Save(a session.Address) AddressSaveResult {
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.Province = strings.TrimSpace(a.Province)
	a.Country = strings.TrimSpace(a.Country)
	a.Zip = strings.TrimSpace(a.Zip)

	if a.State != session.StateNonUS {
		a.Province = ""
		a.Country = ""
	}

	if err := ac.cache.SaveAddress(a); err != nil {
		ac.log.Error("saving address failed", zap.Error(err))
		return AddressSaveResult{Message: errorMsg("Could not save address.")}
	}
	return AddressSaveResult{Message: successMsg("Address saved.")}
}
