package contract

import (
	"testing"

	"github.com/mlcortez/footprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput(root string) *ConfigRawInput {
	return &ConfigRawInput{
		RootPathStr: root,
		Emails:      []string{"jane@example.com"},
		Output:      "text",
		Color:       "yes",
	}
}

func TestProcessAndValidate_HappyPath(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{}

	err := ProcessAndValidate(cfg, validRawInput(root))

	require.NoError(t, err)
	assert.Equal(t, root, cfg.RootPath)
	assert.Contains(t, cfg.Identity.Emails, "jane@example.com")
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.DefaultDatasetFile, cfg.OutputFile)
	assert.Equal(t, schema.NoneBackend, cfg.LedgerBackend)
	assert.True(t, cfg.UseColors)

	// Defaults always present
	assert.Contains(t, cfg.SkipDirs, "node_modules")
	assert.Contains(t, cfg.Filters.IgnoreBasenames, "package-lock.json")
	assert.Contains(t, cfg.Filters.IgnoreExtensions, ".min.js")
	assert.Equal(t, "Go", cfg.Languages[".go"])
}

func TestProcessAndValidate_IdentityNormalization(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.Emails = []string{" Jane@Example.COM ", ""}
	input.Names = []string{"  Jane Doe  "}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Contains(t, cfg.Identity.Emails, "jane@example.com", "emails are trimmed and lower-cased")
	assert.Contains(t, cfg.Identity.Names, "Jane Doe", "names are trimmed but keep their case")
	assert.Len(t, cfg.Identity.Emails, 1)
}

func TestProcessAndValidate_NoIdentity(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.Emails = nil

	err := ProcessAndValidate(cfg, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target identity configured")
}

func TestProcessAndValidate_RootPathMustBeDirectory(t *testing.T) {
	cfg := &Config{}
	input := validRawInput("/definitely/not/a/real/path")

	assert.Error(t, ProcessAndValidate(cfg, input))
}

func TestProcessAndValidate_InvalidOutput(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.Output = "xml"

	err := ProcessAndValidate(cfg, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestProcessAndValidate_ExtraFilters(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.IgnoreExts = []string{"PB.GO", ".wasm"}
	input.IgnoreFiles = []string{"go.sum"}
	input.SkipDirs = []string{"build"}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Contains(t, cfg.Filters.IgnoreExtensions, ".pb.go", "extensions are lower-cased and dot-prefixed")
	assert.Contains(t, cfg.Filters.IgnoreExtensions, ".wasm")
	assert.Contains(t, cfg.Filters.IgnoreBasenames, "go.sum")
	assert.Contains(t, cfg.SkipDirs, "build")
}

func TestProcessAndValidate_LanguageOverrides(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.Languages = map[string]string{"zig": "Zig", ".go": "Golang"}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "Zig", cfg.Languages[".zig"])
	assert.Equal(t, "Golang", cfg.Languages[".go"], "overrides beat defaults")
}

func TestProcessAndValidate_LedgerBackend(t *testing.T) {
	cfg := &Config{}
	input := validRawInput(t.TempDir())
	input.LedgerBackend = "flatfile"

	err := ProcessAndValidate(cfg, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ledger backend")
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@host/db"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/footprint"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost dbname=footprint sslmode=disable"))
}

func TestProcessDiscoveryOnly(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{}

	err := ProcessDiscoveryOnly(cfg, &ConfigRawInput{RootPathStr: root})

	require.NoError(t, err, "discovery needs no identity")
	assert.Equal(t, root, cfg.RootPath)
	assert.Contains(t, cfg.SkipDirs, "node_modules")
	assert.Equal(t, schema.TextOut, cfg.Output)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput(t.TempDir())))

	clone := cfg.Clone()
	clone.Identity.Emails["other@example.com"] = struct{}{}
	clone.SkipDirs["extra"] = struct{}{}
	clone.Languages[".zig"] = "Zig"

	assert.NotContains(t, cfg.Identity.Emails, "other@example.com")
	assert.NotContains(t, cfg.SkipDirs, "extra")
	assert.NotContains(t, cfg.Languages, ".zig")
}
