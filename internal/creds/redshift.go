package creds

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jasonwu001t/taicfg/config"
)

// Redshift holds connection credentials for an Amazon Redshift cluster,
// read from the [redshift] settings section.
type Redshift struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// LoadRedshift reads the [redshift] section. Host, database, user and
// password are mandatory; port defaults to 5439.
func LoadRedshift(r *config.Resolver) (Redshift, error) {
	s := newSectionReader(r, "redshift")

	cfg := Redshift{
		Host:     s.required("host"),
		Port:     s.intOptional("port", 5439),
		Database: s.required("database"),
		User:     s.required("user"),
		Password: s.required("password"),
	}

	return cfg, s.err()
}

// DSN renders a lib/pq keyword connection string. Redshift speaks the
// postgres wire protocol, so the stock postgres driver applies. The
// keyword form avoids URL-escaping issues in generated passwords.
func (c Redshift) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=require",
		c.Host, c.Port, c.Database, c.User, c.Password)
}

func (c Redshift) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required, is.Host),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.User, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}
