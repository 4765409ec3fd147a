package creds

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jasonwu001t/taicfg/config"
)

// DefaultAlpacaBaseURL is the paper-trading endpoint. Live trading
// requires an explicit base_url so it can never happen by accident.
const DefaultAlpacaBaseURL = "https://paper-api.alpaca.markets"

// Alpaca holds API credentials for the Alpaca trading client, read from
// the [alpaca] settings section.
type Alpaca struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

// LoadAlpaca reads the [alpaca] section. Key and secret are mandatory;
// base_url defaults to the paper-trading endpoint.
func LoadAlpaca(r *config.Resolver) (Alpaca, error) {
	s := newSectionReader(r, "alpaca")

	cfg := Alpaca{
		APIKey:    s.required("api_key"),
		APISecret: s.required("api_secret"),
		BaseURL:   s.optional("base_url", DefaultAlpacaBaseURL),
	}

	return cfg, s.err()
}

func (c Alpaca) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.APISecret, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
	)
}
