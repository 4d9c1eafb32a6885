package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogDir       = "/var/log/upload-cleanup"
	defaultLogFile      = "cleanup.log"
	defaultRotationDays = 30
)

type LoggingCfg struct {
	Dir          string `yaml:"dir" json:"dir"`
	File         string `yaml:"file" json:"file"`
	RotationDays int    `yaml:"rotation_days" json:"rotation_days"` // Days to keep logs before rotation
}

type MetricsCfg struct {
	TextfilePath string `yaml:"textfile_path" json:"textfile_path"` // node_exporter textfile output, empty disables
}

type Config struct {
	Logging      LoggingCfg `yaml:"logging" json:"logging"`
	Metrics      MetricsCfg `yaml:"metrics" json:"metrics"`
	AbortOnError bool       `yaml:"abort_on_error" json:"abort_on_error"` // Stop at the first failed removal
}

var (
	errNegativeRotation = errors.New("logging.rotation_days cannot be negative")
	errInvalidPath      = errors.New("path must be absolute")
	errInvalidLogFile   = errors.New("logging.file must be a bare file name")
)

// Load reads and validates the YAML configuration at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	// Defaults alone always validate
	_ = cfg.validateAndDefault()
	return cfg
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: every value comes from defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if c.Logging.RotationDays < 0 {
		return errNegativeRotation
	}
	if c.Logging.RotationDays == 0 {
		c.Logging.RotationDays = defaultRotationDays
	}

	if c.Logging.Dir == "" {
		c.Logging.Dir = defaultLogDir
	}
	dir, err := cleanAbsolute(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = dir

	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile
	}
	if filepath.Base(c.Logging.File) != c.Logging.File {
		return fmt.Errorf("%w: %s", errInvalidLogFile, c.Logging.File)
	}

	if c.Metrics.TextfilePath != "" {
		p, err := cleanAbsolute(c.Metrics.TextfilePath)
		if err != nil {
			return fmt.Errorf("metrics.textfile_path: %w", err)
		}
		c.Metrics.TextfilePath = p
	}

	return nil
}

func cleanAbsolute(p string) (string, error) {
	if p == "" {
		return "", errInvalidPath
	}
	cp := filepath.Clean(p)
	if !filepath.IsAbs(cp) {
		return "", fmt.Errorf("%w: %s", errInvalidPath, p)
	}
	return cp, nil
}

// SetMetricsTextfile overrides metrics.textfile_path under the same rules Load applies
func (c *Config) SetMetricsTextfile(path string) error {
	p, err := cleanAbsolute(path)
	if err != nil {
		return fmt.Errorf("metrics.textfile_path: %w", err)
	}
	c.Metrics.TextfilePath = p
	return nil
}

// LogPath returns the full path of the active log file
func (c *Config) LogPath() string {
	return filepath.Join(c.Logging.Dir, c.Logging.File)
}
