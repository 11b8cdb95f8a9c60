package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid go config",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageGo,
				OutputDir: "output",
				Go:        GoConfig{Package: "gen", Filename: "types.go"},
			},
		},
		{
			name: "valid rust config",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageRust,
				OutputDir: "output",
				Rust:      RustConfig{Filename: "types.rs", Edition: "2021"},
			},
		},
		{
			name:   "inspect needs only spec",
			config: Config{Spec: "spec.yaml"},
		},
		{
			name:        "missing spec",
			config:      Config{Language: LanguageGo, OutputDir: "output"},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "missing output dir",
			config: Config{
				Spec:     "spec.yaml",
				Language: LanguageGo,
				Go:       GoConfig{Package: "gen", Filename: "types.go"},
			},
			wantErr:     true,
			errContains: "output directory is required",
		},
		{
			name: "missing package",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageGo,
				OutputDir: "output",
				Go:        GoConfig{Filename: "types.go"},
			},
			wantErr:     true,
			errContains: "package name is required",
		},
		{
			name: "keyword package",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageGo,
				OutputDir: "output",
				Go:        GoConfig{Package: "type", Filename: "types.go"},
			},
			wantErr:     true,
			errContains: "invalid package name",
		},
		{
			name: "dashed package",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageGo,
				OutputDir: "output",
				Go:        GoConfig{Package: "my-api", Filename: "types.go"},
			},
			wantErr:     true,
			errContains: "invalid package name",
		},
		{
			name: "invalid rust edition",
			config: Config{
				Spec:      "spec.yaml",
				Language:  LanguageRust,
				OutputDir: "output",
				Rust:      RustConfig{Filename: "types.rs", Edition: "2019"},
			},
			wantErr:     true,
			errContains: "invalid rust edition",
		},
		{
			name: "invalid language",
			config: Config{
				Spec:      "spec.yaml",
				Language:  "python",
				OutputDir: "output",
			},
			wantErr:     true,
			errContains: "invalid language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					require.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
output-dir: ./output
strict: true
exclude-schemas: [Internal]
go:
  package: gen
  enable-yaml-tags: true
`
	configPath := filepath.Join(tmpDir, DefaultFile)
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp dir so alors.yaml is found
	t.Chdir(tmpDir)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)

	cfg, err := Load(cmd, LanguageGo)
	require.NoError(t, err)

	require.Equal(t, "api.yaml", cfg.Spec)
	require.Equal(t, LanguageGo, cfg.Language)
	require.Equal(t, "./output", cfg.OutputDir)
	require.True(t, cfg.Strict)
	require.Equal(t, []string{"Internal"}, cfg.ExcludeSchemas)
	require.Equal(t, "gen", cfg.Go.Package)
	require.True(t, cfg.Go.EnableYAMLTags)
	require.Equal(t, "types.go", cfg.Go.Filename)
	require.Equal(t, "types.go", cfg.Filename())
}

func TestLoadRustDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)
	require.NoError(t, cmd.PersistentFlags().Set("spec", "api.yaml"))
	require.NoError(t, cmd.Flags().Set("output-dir", "./out"))

	cfg, err := Load(cmd, LanguageRust)
	require.NoError(t, err)

	require.Equal(t, "types.rs", cfg.Filename())
	require.Equal(t, "2021", cfg.Rust.Edition)
	require.False(t, cfg.Rust.Rustfmt)
	require.False(t, cfg.Strict)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
output-dir: ./output
go:
  package: gen
`
	configPath := filepath.Join(tmpDir, DefaultFile)
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Chdir(tmpDir)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)

	// Set flags that should override file config
	require.NoError(t, cmd.Flags().Set("package", "petstore"))
	require.NoError(t, cmd.PersistentFlags().Set("strict", "true"))

	cfg, err := Load(cmd, LanguageGo)
	require.NoError(t, err)

	require.Equal(t, "petstore", cfg.Go.Package)
	require.True(t, cfg.Strict)
}

func TestLoadWithExplicitConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: custom.yaml
output-dir: ./custom
rust:
  rustfmt: true
  edition: "2024"
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))

	cfg, err := Load(cmd, LanguageRust)
	require.NoError(t, err)

	require.Equal(t, "custom.yaml", cfg.Spec)
	require.Equal(t, "./custom", cfg.OutputDir)
	require.True(t, cfg.Rust.Rustfmt)
	require.Equal(t, "2024", cfg.Rust.Edition)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)

	_, err := Load(cmd, LanguageGo)
	require.ErrorContains(t, err, "spec file is required")
}

func TestBuildFlagsMap(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindLanguageFlags(cmd)

	require.NoError(t, cmd.PersistentFlags().Set("spec", "test.yaml"))
	require.NoError(t, cmd.PersistentFlags().Set("templates", "./tmpl"))
	require.NoError(t, cmd.Flags().Set("package", "testpkg"))
	require.NoError(t, cmd.Flags().Set("output-dir", "./out"))
	require.NoError(t, cmd.Flags().Set("additional-initialisms", "GW,K8S"))
	require.NoError(t, cmd.Flags().Set("rustfmt", "true"))

	m := buildFlagsMap(cmd)

	require.Equal(t, "test.yaml", m["spec"])
	require.Equal(t, "./tmpl", m["templates.dir"])
	require.Equal(t, "testpkg", m["go.package"])
	require.Equal(t, "./out", m["output-dir"])
	require.Equal(t, []string{"GW", "K8S"}, m["go.additional-initialisms"])
	require.Equal(t, true, m["rust.rustfmt"])
	require.NotContains(t, m, "strict")
	require.NotContains(t, m, "go.enable-yaml-tags")
}

// Helper to bind language flags for testing
func bindLanguageFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output-dir", "o", "", "Output directory")
	flags.StringP("package", "p", "", "Go package name")
	flags.String("go-filename", "", "Go output file name")
	flags.Bool("enable-yaml-tags", false, "Generate yaml tags")
	flags.StringSlice("additional-initialisms", nil, "Additional initialisms")
	flags.String("rust-filename", "", "Rust output file name")
	flags.Bool("rustfmt", false, "Format with rustfmt")
	flags.String("edition", "", "Rust edition")
}
