package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Address is the locally cached shipping address, stored under its own key
// separate from the session itself.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Province string `json:"province,omitempty"`
	Country  string `json:"country,omitempty"`
	Zip      string `json:"zip"`
}

// StateNonUS marks a non-US address; province and country apply only then.
const StateNonUS = "NON_US"

const addressFile = "address.json"

// LoadAddress returns the cached address. Decode failures degrade to "no
// prefill" with a log line.
func (s *Store) LoadAddress() (Address, bool) {
	buf, err := os.ReadFile(filepath.Join(s.dir, addressFile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("address cache unreadable", zap.Error(err))
		}
		return Address{}, false
	}
	var a Address
	if err := json.Unmarshal(buf, &a); err != nil {
		s.log.Warn("address cache corrupt", zap.Error(err))
		return Address{}, false
	}
	return a, true
}

// SaveAddress caches the address locally.
func (s *Store) SaveAddress(a Address) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	buf, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode address: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, addressFile), buf, 0o600); err != nil {
		return fmt.Errorf("write address: %w", err)
	}
	return nil
}
