// Package config loads the ufsconv TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/arloliu/ufsconv/format"
	"github.com/arloliu/ufsconv/table"
	"github.com/arloliu/ufsconv/ufs"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "~/.ufsconv.toml"

// Config holds the converter settings.
type Config struct {
	Version        string
	Axis1Label     string
	Axis1Units     string
	Axis2Label     string
	Axis2Units     string
	DataLabel      string
	MetadataPrefix string
	AxisDecimals   int
	ValueDecimals  int
	Compression    format.CompressionType
	LegacyTrailer  bool
}

// fileConfig maps the TOML keys.
type fileConfig struct {
	Version        string `toml:"version"`
	Axis1Label     string `toml:"axis1_label"`
	Axis1Units     string `toml:"axis1_units"`
	Axis2Label     string `toml:"axis2_label"`
	Axis2Units     string `toml:"axis2_units"`
	DataLabel      string `toml:"data_label"`
	MetadataPrefix string `toml:"metadata_prefix"`
	AxisDecimals   int    `toml:"axis_decimals"`
	ValueDecimals  int    `toml:"value_decimals"`
	Compression    string `toml:"compression"`
	LegacyTrailer  bool   `toml:"legacy_trailer"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Version:        ufs.DefaultVersion,
		Axis1Label:     ufs.DefaultAxis1Label,
		Axis1Units:     ufs.DefaultAxis1Units,
		Axis2Label:     ufs.DefaultAxis2Label,
		Axis2Units:     ufs.DefaultAxis2Units,
		DataLabel:      ufs.DefaultDataLabel,
		MetadataPrefix: ufs.MetadataSourceLead,
		AxisDecimals:   table.DefaultAxisDecimals,
		ValueDecimals:  table.DefaultValueDecimals,
		Compression:    format.CompressionNone,
	}
}

// Load reads the configuration at path and overlays it onto Default.
//
// An empty path selects DefaultPath, which may be absent. An explicitly
// named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	resolved, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg, err := LoadFile(resolved)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// LoadFile reads one TOML file and overlays the keys it defines onto Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("version") {
		cfg.Version = raw.Version
	}
	if meta.IsDefined("axis1_label") {
		cfg.Axis1Label = strings.TrimSpace(raw.Axis1Label)
	}
	if meta.IsDefined("axis1_units") {
		cfg.Axis1Units = strings.TrimSpace(raw.Axis1Units)
	}
	if meta.IsDefined("axis2_label") {
		cfg.Axis2Label = strings.TrimSpace(raw.Axis2Label)
	}
	if meta.IsDefined("axis2_units") {
		cfg.Axis2Units = strings.TrimSpace(raw.Axis2Units)
	}
	if meta.IsDefined("data_label") {
		cfg.DataLabel = strings.TrimSpace(raw.DataLabel)
	}
	if meta.IsDefined("metadata_prefix") {
		cfg.MetadataPrefix = strings.TrimSpace(raw.MetadataPrefix)
	}
	if meta.IsDefined("axis_decimals") {
		cfg.AxisDecimals = raw.AxisDecimals
	}
	if meta.IsDefined("value_decimals") {
		cfg.ValueDecimals = raw.ValueDecimals
	}
	if meta.IsDefined("compression") {
		c, err := format.ParseCompression(raw.Compression)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg.Compression = c
	}
	if meta.IsDefined("legacy_trailer") {
		cfg.LegacyTrailer = raw.LegacyTrailer
	}

	if _, err := table.NewConfig(cfg.TableOptions()...); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// TableOptions returns the table adapter options for these settings.
func (c Config) TableOptions() []table.Option {
	return []table.Option{
		table.WithVersion(c.Version),
		table.WithAxis1(c.Axis1Label, c.Axis1Units),
		table.WithAxis2(c.Axis2Label, c.Axis2Units),
		table.WithDataLabel(c.DataLabel),
		table.WithMetadataPrefix(c.MetadataPrefix),
		table.WithLegacyTrailer(c.LegacyTrailer),
		table.WithAxisDecimals(c.AxisDecimals),
		table.WithValueDecimals(c.ValueDecimals),
	}
}

// WriteOptions returns the ufs.WriteFile options for these settings.
func (c Config) WriteOptions() []ufs.WriteOption {
	return []ufs.WriteOption{ufs.WithCompression(c.Compression)}
}
