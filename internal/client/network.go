package client

import (
	"context"
	"net"
	"net/url"
	"time"
)

// NetworkChecker reports whether the network path to the server exists at all.
// It answers faster than a full HTTP probe and distinguishes "device offline"
// from "server down".
type NetworkChecker interface {
	Online(ctx context.Context) bool
}

// DialChecker checks reachability with a plain TCP dial to the server host.
type DialChecker struct {
	addr    string
	timeout time.Duration
}

// NewDialChecker builds a DialChecker from the API base URL.
func NewDialChecker(baseURL string, timeout time.Duration) (*DialChecker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "https":
			host = net.JoinHostPort(u.Hostname(), "443")
		default:
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}

	return &DialChecker{addr: host, timeout: timeout}, nil
}

// Online dials the server host and reports whether the connection succeeded.
func (d *DialChecker) Online(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: d.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
