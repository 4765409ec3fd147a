package creds

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jasonwu001t/taicfg/config"
)

// OpenAI holds API credentials for the OpenAI client, read from the
// [openai] settings section.
type OpenAI struct {
	APIKey  string
	BaseURL string
}

// LoadOpenAI reads the [openai] section. The API key is mandatory;
// base_url is optional and overrides the SDK default (for proxies or
// compatible endpoints).
func LoadOpenAI(r *config.Resolver) (OpenAI, error) {
	s := newSectionReader(r, "openai")

	cfg := OpenAI{
		APIKey:  s.required("api_key"),
		BaseURL: s.optional("base_url", ""),
	}

	return cfg, s.err()
}

func (c OpenAI) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.BaseURL, is.URL),
	)
}
