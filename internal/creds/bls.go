package creds

import (
	"github.com/jasonwu001t/taicfg/config"
)

// BLS holds the registration key for the Bureau of Labor Statistics public
// API, read from the [bls] settings section. The key is optional: unkeyed
// requests work against the v2 API at a reduced daily quota.
type BLS struct {
	APIKey string
}

// LoadBLS reads the [bls] section.
func LoadBLS(r *config.Resolver) (BLS, error) {
	s := newSectionReader(r, "bls")

	cfg := BLS{
		APIKey: s.optional("api_key", ""),
	}

	return cfg, s.err()
}

// Validate always succeeds today; it exists so BLS satisfies Credentials
// alongside the providers that do have mandatory fields.
func (c BLS) Validate() error {
	return nil
}
