package server

import "time"

// DefaultPort is the port the server listens on unless configured.
const DefaultPort = 3000

type HttpConfig struct {
	// Host is the interface to listen on. Empty means all interfaces.
	Host string `conf:"host"`

	// Port is the TCP port to listen on.
	Port int `conf:"port"`

	// H2c enables HTTP/2 cleartext upgrades.
	H2c bool `conf:"h2c"`

	// ReadHeaderTimeout bounds the time to read request headers.
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout"`
}
