package config

import "fmt"

// Context is the configuration info plus all runtime parameters.
type Context struct {
	// Info is the config Info that was loaded from the config file.
	*Info

	// Port is the http port that was specified on the command line.
	Port int
}

// ListenAddr is the address that should be passed to net.Listen.
func (c *Context) ListenAddr() string {
	switch c.Port {
	case 80:
		return ":http"
	case 443:
		return ":https"
	}
	return fmt.Sprintf(":%d", c.Port)
}

// BuildContext constructs a new context. A zero port picks the standard port
// for the configured scheme.
func BuildContext(cfg *Info, port int) *Context {
	if port == 0 {
		if cfg.HasCerts() {
			port = 443
		} else {
			port = 80
		}
	}

	return &Context{
		Info: cfg,
		Port: port,
	}
}
