package server

import (
	"net"
	"strconv"
	"time"

	"ui-server/core/utils"
)

// DefaultPort is used when APP_PORT is unset or not a valid TCP port.
const DefaultPort = 3000

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the raw port value; use ListenPort for the effective port.
	Port string `mapstructure:"port" default:"3000"`
	// Debug is the raw debug flag; only the exact string "true" enables it.
	Debug string `mapstructure:"debug" default:""`
	// ReadTimeoutSeconds bounds reading a full request. Zero disables it.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// WriteTimeoutSeconds bounds writing a response. Zero disables it.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"30"`
	// IdleTimeoutSeconds bounds keep-alive idle time. Zero disables it.
	IdleTimeoutSeconds int `mapstructure:"idle_timeout_seconds" default:"120"`
	// Concurrency is the maximum number of concurrent connections.
	Concurrency int `mapstructure:"concurrency" default:"262144"`
	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool `mapstructure:"metrics" default:"false"`
	// Swagger exposes the API documentation at /swagger/*.
	Swagger bool `mapstructure:"swagger" default:"false"`
}

// ListenPort returns the effective TCP port.
func (c Config) ListenPort() int {
	return utils.ToPort(c.Port, DefaultPort)
}

// DebugEnabled reports whether debug logging was requested.
func (c Config) DebugEnabled() bool {
	return utils.IsExactlyTrue(c.Debug)
}

// Address returns the host:port pair the server binds to.
func (c Config) Address() string {
	host := c.Host
	if host == "" {
		host = "0.0.0.0"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.ListenPort()))
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
