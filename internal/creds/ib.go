package creds

import (
	"net"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jasonwu001t/taicfg/config"
)

// IB holds connection settings for an Interactive Brokers gateway or TWS
// instance, read from the [ib] settings section. Every key has a
// development default: localhost on 7497, the TWS paper-trading port.
type IB struct {
	Host     string
	Port     int
	ClientID int
}

// LoadIB reads the [ib] section.
func LoadIB(r *config.Resolver) (IB, error) {
	s := newSectionReader(r, "ib")

	cfg := IB{
		Host:     s.optional("host", "127.0.0.1"),
		Port:     s.intOptional("port", 7497),
		ClientID: s.intOptional("client_id", 1),
	}

	return cfg, s.err()
}

// Addr renders the gateway socket address.
func (c IB) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c IB) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required, is.Host),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ClientID, validation.Min(0)),
	)
}
