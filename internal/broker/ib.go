package broker

import (
	"context"
	"fmt"
	"net"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// IBClient probes an Interactive Brokers gateway socket. There is no
// maintained Go SDK for the TWS API, so the check is limited to TCP
// reachability of the configured gateway.
type IBClient struct {
	addr string
}

func NewIB(cfg creds.IB) *IBClient {
	return &IBClient{addr: cfg.Addr()}
}

// Ping dials the gateway socket and closes it immediately.
func (c *IBClient) Ping(ctx context.Context) error {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("dial ib gateway %s: %w", c.addr, err)
	}

	return conn.Close()
}
