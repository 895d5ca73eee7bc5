package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kellegous/stepsort/sorts"
)

// Default values used for any setting missing from the config file.
const (
	DefaultMaxArraySize = 200
	DefaultRandomSize   = 10
	DefaultRandomMin    = 1
	DefaultRandomMax    = 100

	DefaultMaxValueRange = sorts.DefaultMaxValueRange
)

// CertInfo names a TLS certificate and its key. The key may be an encrypted
// PEM, in which case the passphrase is requested on startup.
type CertInfo struct {
	Crt string `json:"crt" yaml:"crt"`
	Key string `json:"key" yaml:"key"`
}

// RandomInfo holds the defaults for the random array endpoint.
type RandomInfo struct {
	// Size is the array length used when a request does not name one.
	Size int `json:"size" yaml:"size"`

	// Min and Max bound the generated values (inclusive) when a request does not
	// name them.
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Info is a configuration object that is loaded directly from the config
// file, which may be either JSON or YAML.
type Info struct {
	// The host (without the port specification) the visualizer is served on.
	// Empty means any host.
	Host string `json:"host" yaml:"host"`

	// Whether or not to add a set of security headers to all HTTP responses:
	//
	//    Strict-Transport-Security -- if certs are present, enforce HTTPS
	//    Cache-Control: private, no-cache -- prevent downstream caching
	//    Pragma: no-cache -- prevent HTTP/1.0 downstream caching
	//    X-Frame-Options: SAMEORIGIN -- prevent clickjacking
	AddSecurityHeaders bool `json:"use-strict-security-headers" yaml:"use-strict-security-headers"`

	// TLS certificate files to enable https.
	Certs []CertInfo `json:"certs" yaml:"certs"`

	// The longest array that will be traced. Every step holds a copy of the
	// array and the quadratic sorts take O(n^2) steps, so this bounds both
	// response size and memory per request.
	MaxArraySize int `json:"max-array-size" yaml:"max-array-size"`

	// The widest max-min+1 span counting sort will trace. Its table is recorded
	// on every prefix sum step, so the trace grows with the square of the span.
	MaxValueRange int `json:"max-value-range" yaml:"max-value-range"`

	// The algorithm used when a request names one that does not exist.
	DefaultAlgorithm string `json:"default-algorithm" yaml:"default-algorithm"`

	// Defaults for the random array endpoint.
	Random RandomInfo `json:"random" yaml:"random"`
}

// Default returns the configuration used when no file is given.
func Default() *Info {
	i := &Info{}
	i.applyDefaults()
	return i
}

func (i *Info) applyDefaults() {
	if i.MaxArraySize <= 0 {
		i.MaxArraySize = DefaultMaxArraySize
	}

	if i.MaxValueRange <= 0 {
		i.MaxValueRange = DefaultMaxValueRange
	}

	if i.Random.Size <= 0 {
		i.Random.Size = DefaultRandomSize
	}

	if i.Random.Min == 0 && i.Random.Max == 0 {
		i.Random.Min = DefaultRandomMin
		i.Random.Max = DefaultRandomMax
	}
}

// Validate checks the loaded configuration for settings that can never work.
func (i *Info) Validate() error {
	if i.Random.Min > i.Random.Max {
		return fmt.Errorf("random.min (%d) is greater than random.max (%d)",
			i.Random.Min, i.Random.Max)
	}

	if i.Random.Size > i.MaxArraySize {
		return fmt.Errorf("random.size (%d) exceeds max-array-size (%d)",
			i.Random.Size, i.MaxArraySize)
	}

	for _, c := range i.Certs {
		if c.Crt == "" || c.Key == "" {
			return fmt.Errorf("certs entries need both crt and key")
		}
	}

	return nil
}

// HasCerts is used to determine if the instance is running over HTTP or
// HTTPS, this indicates whether any certificates were included in the
// configuration.
func (i *Info) HasCerts() bool {
	return len(i.Certs) > 0
}

// Scheme is a convenience method for getting the relevant scheme based on
// whether certificates were included in the configuration.
func (i *Info) Scheme() string {
	if len(i.Certs) > 0 {
		return "https"
	}
	return "http"
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Decode reads the configuration from r, as YAML if asYAML is set and JSON
// otherwise, and fills in defaults.
func (i *Info) Decode(r io.Reader, asYAML bool) error {
	*i = Info{}

	var err error
	if asYAML {
		err = yaml.NewDecoder(r).Decode(i)
	} else {
		err = json.NewDecoder(r).Decode(i)
	}

	// an empty file is a valid configuration that takes all defaults.
	if err != nil && err != io.EOF {
		return err
	}

	i.applyDefaults()
	return nil
}

// ReadFile loads the configuration info from the given file. Files ending in
// .yaml or .yml are parsed as YAML, anything else as JSON.
func (i *Info) ReadFile(filename string) error {
	r, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := i.Decode(r, isYAML(filename)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	return nil
}
