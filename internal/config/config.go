// Package config loads the cidl.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cidl/internal/bindgen"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up in the working directory
const FileName = "cidl.yaml"

type Config struct {
	Program       string            `yaml:"program"`
	ProgramID     string            `yaml:"program_id"`
	Src           string            `yaml:"src"`
	Out           string            `yaml:"out"`
	Extensions    []string          `yaml:"extensions"`
	Strict        bool              `yaml:"strict"`
	KnownAccounts map[string]string `yaml:"known_accounts,omitempty"`
	Bindgen       Bindgen           `yaml:"bindgen"`
}

type Bindgen struct {
	Package   string            `yaml:"package"`
	Generics  map[string]uint64 `yaml:"generics,omitempty"`
	AuxImport string            `yaml:"aux_import,omitempty"`
	AuxEvents []AuxEvent        `yaml:"aux_events,omitempty"`
}

// AuxEvent overrides one entry of the auxiliary event catalogue
type AuxEvent struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Discriminator string `yaml:"discriminator"`
	Value         uint64 `yaml:"value"`
	DisplayName   string `yaml:"display_name"`
	Source        string `yaml:"source"`
}

func Default() *Config {
	return &Config{
		Src:        ".",
		Out:        "./target/idl",
		Extensions: []string{".h"},
		Bindgen: Bindgen{
			Package: "events",
		},
	}
}

// Load reads a project file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	// relative directories are relative to the project file
	dir := filepath.Dir(path)
	cfg.Src = resolve(dir, cfg.Src)
	cfg.Out = resolve(dir, cfg.Out)
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// ProgramKey parses the configured program id.
func (c *Config) ProgramKey() (solana.PublicKey, error) {
	if c.ProgramID == "" {
		return solana.PublicKey{}, errors.New("program id is not set")
	}
	key, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid program id %q: %w", c.ProgramID, err)
	}
	return key, nil
}

// Catalogue returns the auxiliary event catalogue. Without aux_events the
// default pump.fun catalogue is used, under aux_import when it is set.
func (c *Config) Catalogue() bindgen.Catalogue {
	catalogue := bindgen.DefaultCatalogue()
	if c.Bindgen.AuxImport != "" {
		catalogue.Import = c.Bindgen.AuxImport
	}
	if len(c.Bindgen.AuxEvents) == 0 {
		return catalogue
	}

	catalogue.Events = nil
	for _, ev := range c.Bindgen.AuxEvents {
		catalogue.Events = append(catalogue.Events, bindgen.AuxEvent{
			Name:          ev.Name,
			Type:          ev.Type,
			Discriminator: ev.Discriminator,
			Value:         ev.Value,
			DisplayName:   ev.DisplayName,
			Source:        bindgen.Source(ev.Source),
		})
	}
	return catalogue
}
