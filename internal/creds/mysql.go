package creds

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jasonwu001t/taicfg/config"
)

// MySQL holds connection credentials for a MySQL server, read from the
// [mysql] settings section.
type MySQL struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// LoadMySQL reads the [mysql] section. Host, user, password and database
// are mandatory; port defaults to 3306.
func LoadMySQL(r *config.Resolver) (MySQL, error) {
	s := newSectionReader(r, "mysql")

	cfg := MySQL{
		Host:     s.required("host"),
		Port:     s.intOptional("port", 3306),
		User:     s.required("user"),
		Password: s.required("password"),
		Database: s.required("database"),
	}

	return cfg, s.err()
}

// DSN renders the go-sql-driver connection string.
func (c MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

func (c MySQL) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required, is.Host),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.User, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.Database, validation.Required),
	)
}
