package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// Claims are the identity fields carried in the token payload. The client
// never verifies the signature; it only decodes for prefill.
type Claims = User

// DecodeClaims parses the middle segment of a three-part dot-delimited token
// as base64url JSON. Malformed input yields (Claims{}, false) and a log
// line; it never returns an error to the caller.
func (s *Store) DecodeClaims(token string) (Claims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		s.log.Warn("token is not three segments", zap.Int("segments", len(parts)))
		return Claims{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		s.log.Warn("token payload is not base64url", zap.Error(err))
		return Claims{}, false
	}

	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		s.log.Warn("token payload is not json", zap.Error(err))
		return Claims{}, false
	}
	return c, true
}

// CurrentClaims decodes the stored token, if any.
func (s *Store) CurrentClaims() (Claims, bool) {
	token, ok := s.Token()
	if !ok {
		return Claims{}, false
	}
	return s.DecodeClaims(token)
}
