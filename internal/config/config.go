package config

import (
	"fmt"
	"os"

	"github.com/kolah/alors/internal/golang"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const DefaultFile = "alors.yaml"

const (
	LanguageGo   = "go"
	LanguageRust = "rust"
)

type Config struct {
	Spec           string         `koanf:"spec"`
	Language       string         `koanf:"language"`
	OutputDir      string         `koanf:"output-dir"`
	Strict         bool           `koanf:"strict"`
	ExcludeSchemas []string       `koanf:"exclude-schemas"`
	Templates      TemplateConfig `koanf:"templates"`
	Go             GoConfig       `koanf:"go"`
	Rust           RustConfig     `koanf:"rust"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type GoConfig struct {
	Package               string   `koanf:"package"`
	Filename              string   `koanf:"filename"`
	EnableYAMLTags        bool     `koanf:"enable-yaml-tags"`
	AdditionalInitialisms []string `koanf:"additional-initialisms"`
}

type RustConfig struct {
	Filename string `koanf:"filename"`
	Rustfmt  bool   `koanf:"rustfmt"`
	Edition  string `koanf:"edition"`
}

var defaults = map[string]any{
	"go.filename":   "types.go",
	"rust.filename": "types.rs",
	"rust.edition":  "2021",
}

// BindCommonFlags binds language-agnostic flags to the generate and
// inspect commands
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("spec", "s", "", "OpenAPI document path")
	flags.String("templates", "", "Custom templates directory")
	flags.StringSlice("exclude-schemas", nil, "Component schemas to exclude")
	flags.Bool("strict", false, "Fail when any diagnostic is reported")
}

// Load layers defaults, the config file and command flags. language is
// empty for commands that do not render output.
func Load(cmd *cobra.Command, language string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// The subcommand decides the language
	if language != "" {
		cfg.Language = language
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["output-dir"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getStringSlice("exclude-schemas"); len(v) > 0 {
		m["exclude-schemas"] = v
	}
	if flagChanged("strict") {
		m["strict"] = getBool("strict")
	}

	// Go-specific flags (under go. namespace)
	if v := getString("package"); v != "" {
		m["go.package"] = v
	}
	if v := getString("go-filename"); v != "" {
		m["go.filename"] = v
	}
	if flagChanged("enable-yaml-tags") {
		m["go.enable-yaml-tags"] = getBool("enable-yaml-tags")
	}
	if v := getStringSlice("additional-initialisms"); len(v) > 0 {
		m["go.additional-initialisms"] = v
	}

	// Rust-specific flags (under rust. namespace)
	if v := getString("rust-filename"); v != "" {
		m["rust.filename"] = v
	}
	if flagChanged("rustfmt") {
		m["rust.rustfmt"] = getBool("rustfmt")
	}
	if v := getString("edition"); v != "" {
		m["rust.edition"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Language == "" {
		return nil
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	switch c.Language {
	case LanguageGo:
		if c.Go.Package == "" {
			return fmt.Errorf("package name is required")
		}
		if !golang.IsPackageName(c.Go.Package) {
			return fmt.Errorf("invalid package name: %s", c.Go.Package)
		}
		if c.Go.Filename == "" {
			return fmt.Errorf("go filename is required")
		}
	case LanguageRust:
		if c.Rust.Filename == "" {
			return fmt.Errorf("rust filename is required")
		}
		validEditions := map[string]bool{"2015": true, "2018": true, "2021": true, "2024": true}
		if !validEditions[c.Rust.Edition] {
			return fmt.Errorf("invalid rust edition: %s (valid: 2015, 2018, 2021, 2024)", c.Rust.Edition)
		}
	default:
		return fmt.Errorf("invalid language: %s (valid: go, rust)", c.Language)
	}

	return nil
}

// Filename is the name of the file generated for the configured language.
func (c *Config) Filename() string {
	if c.Language == LanguageRust {
		return c.Rust.Filename
	}
	return c.Go.Filename
}
