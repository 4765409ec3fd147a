package creds

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jasonwu001t/taicfg/config"
)

// AWS holds a static key pair for AWS service clients (DynamoDB today),
// read from the [aws] settings section.
type AWS struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// LoadAWS reads the [aws] section. The key pair is mandatory; region
// defaults to us-east-1.
func LoadAWS(r *config.Resolver) (AWS, error) {
	s := newSectionReader(r, "aws")

	cfg := AWS{
		AccessKeyID:     s.required("access_key_id"),
		SecretAccessKey: s.required("secret_access_key"),
		Region:          s.optional("region", "us-east-1"),
	}

	return cfg, s.err()
}

func (c AWS) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccessKeyID, validation.Required),
		validation.Field(&c.SecretAccessKey, validation.Required),
		validation.Field(&c.Region, validation.Required),
	)
}
