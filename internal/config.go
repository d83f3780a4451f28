package internal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Vault     VaultConfig       `yaml:"vault"`
	Filter    FilterConfig      `yaml:"filter"`
	Selection SelectionConfig   `yaml:"selection"`
	Export    ExportConfig      `yaml:"export"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	if err := c.Selection.Validate(); err != nil {
		return err
	}
	return c.Export.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	Verbose bool `yaml:"verbose"`
}

// VaultConfig holds the path to the Markdown vault directory.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// FilterConfig holds the tag constraints applied before graph construction.
type FilterConfig struct {
	IgnoreTags []string `yaml:"ignore_tags"`
	SelectTags []string `yaml:"select_tags"`
}

// SelectionConfig holds the export-subset constraints. A zero value means the
// corresponding constraint is not applied.
type SelectionConfig struct {
	Top        int     `yaml:"top"`
	TopPercent float64 `yaml:"top_percent"`
	MaxSizeMB  float64 `yaml:"max_size_mb"`
}

// Validate validates the selection configuration.
func (c *SelectionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Top, validation.Min(0)),
		validation.Field(&c.TopPercent, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&c.MaxSizeMB, validation.Min(0.0)),
	)
}

// MaxBytes converts the megabyte budget to bytes, 0 when unset.
func (c *SelectionConfig) MaxBytes() int64 {
	if c.MaxSizeMB <= 0 {
		return 0
	}
	return int64(c.MaxSizeMB * 1024 * 1024)
}

// ExportConfig holds the output side of a run.
type ExportConfig struct {
	CSVPath     string `yaml:"csv_path"`
	NoCSV       bool   `yaml:"no_csv"`
	Dest        string `yaml:"dest"`
	CombinePath string `yaml:"combine_path"`
	DryRun      bool   `yaml:"dry_run"`
}

// Validate validates the export configuration. The CSV path is only required
// when a CSV will actually be written.
func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CSVPath, validation.When(!c.NoCSV && !c.DryRun, validation.Required)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Vault: VaultConfig{
			Path: "./vault",
		},
	}
}
