package table

import (
	"fmt"

	"github.com/arloliu/ufsconv/internal/options"
	"github.com/arloliu/ufsconv/ufs"
)

// Default rounding policy of the table writer.
const (
	DefaultAxisDecimals  = 1
	DefaultValueDecimals = 7
	maxDecimals          = 17
)

// Config holds the table adapter settings.
//
// Labels, units, version and metadata prefix are applied when reading a table
// into a document; decimals and line endings are applied when writing.
type Config struct {
	Version        string
	Axis1Label     string
	Axis1Units     string
	Axis2Label     string
	Axis2Units     string
	DataLabel      string
	MetadataPrefix string
	LegacyTrailer  bool

	AxisDecimals  int
	ValueDecimals int
	CRLF          bool
}

// Option configures the table adapter.
type Option = options.Option[*Config]

// DefaultConfig returns the adapter defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        ufs.DefaultVersion,
		Axis1Label:     ufs.DefaultAxis1Label,
		Axis1Units:     ufs.DefaultAxis1Units,
		Axis2Label:     ufs.DefaultAxis2Label,
		Axis2Units:     ufs.DefaultAxis2Units,
		DataLabel:      ufs.DefaultDataLabel,
		MetadataPrefix: ufs.MetadataSourceLead,
		AxisDecimals:   DefaultAxisDecimals,
		ValueDecimals:  DefaultValueDecimals,
		CRLF:           true,
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithVersion sets the version tag of documents read from tables.
func WithVersion(version string) Option {
	return options.NoError(func(c *Config) {
		c.Version = version
	})
}

// WithAxis1 sets the label and units of the primary axis.
func WithAxis1(label, units string) Option {
	return options.NoError(func(c *Config) {
		c.Axis1Label = label
		c.Axis1Units = units
	})
}

// WithAxis2 sets the label and units of the secondary axis.
func WithAxis2(label, units string) Option {
	return options.NoError(func(c *Config) {
		c.Axis2Label = label
		c.Axis2Units = units
	})
}

// WithDataLabel sets the data matrix label.
func WithDataLabel(label string) Option {
	return options.NoError(func(c *Config) {
		c.DataLabel = label
	})
}

// WithMetadataPrefix sets the text placed before the source name in the metadata.
func WithMetadataPrefix(prefix string) Option {
	return options.NoError(func(c *Config) {
		c.MetadataPrefix = prefix
	})
}

// WithLegacyTrailer enables the trailer heuristic described in the package docs.
func WithLegacyTrailer(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.LegacyTrailer = enabled
	})
}

// WithAxisDecimals sets the number of decimal places kept for axis1 values.
func WithAxisDecimals(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 || n > maxDecimals {
			return fmt.Errorf("axis decimals %d out of range [0, %d]", n, maxDecimals)
		}
		c.AxisDecimals = n

		return nil
	})
}

// WithValueDecimals sets the number of decimal places kept for matrix values.
func WithValueDecimals(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 || n > maxDecimals {
			return fmt.Errorf("value decimals %d out of range [0, %d]", n, maxDecimals)
		}
		c.ValueDecimals = n

		return nil
	})
}

// WithCRLF selects "\r\n" (true, the default) or "\n" line endings.
func WithCRLF(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.CRLF = enabled
	})
}
