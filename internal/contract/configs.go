package contract

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlcortez/footprint/schema"
)

// IdentityConfig holds the immutable target identity of the operator being
// profiled. Emails are stored lower-cased and compared case-insensitively;
// names are compared exactly.
type IdentityConfig struct {
	Emails map[string]struct{}
	Names  map[string]struct{}
}

// FilterConfig holds the immutable noise filters applied to per-file
// churn statistics.
type FilterConfig struct {
	IgnoreBasenames  map[string]struct{} // exact basenames, e.g. lock files
	IgnoreExtensions map[string]struct{} // lower-cased extensions, incl. compound ones
}

// Config holds the runtime configuration for a mining run. It is built
// once by ProcessAndValidate and passed explicitly into each component;
// nothing reads ambient state after that.
type Config struct {
	RootPath    string            // Absolute path under which repositories are discovered
	Identity    IdentityConfig    // Target identity sets
	Filters     FilterConfig      // Churn noise filters
	SkipDirs    map[string]struct{} // Directory names pruned during discovery
	Languages   map[string]string // Extension to language table for snapshots
	OutputFile  string            // Where the dataset JSON is written
	Output      schema.OutputMode // Console output format
	ParquetFile string            // Optional flattened-commit Parquet export

	LedgerBackend   schema.DatabaseBackend
	LedgerDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in console output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	Emails          []string          `mapstructure:"emails"`
	Names           []string          `mapstructure:"names"`
	OutputFile      string            `mapstructure:"output-file"`
	Output          string            `mapstructure:"output"`
	ParquetFile     string            `mapstructure:"parquet-file"`
	IgnoreExts      []string          `mapstructure:"ignore-extensions"`
	IgnoreFiles     []string          `mapstructure:"ignore-files"`
	SkipDirs        []string          `mapstructure:"skip-dirs"`
	Languages       map[string]string `mapstructure:"languages"`
	LedgerBackend   string            `mapstructure:"ledger-backend"`
	LedgerDBConnect string            `mapstructure:"ledger-db-connect"`
	Color           string            `mapstructure:"color"`
}

// Clone returns a deep copy of the Config, so callers can adjust settings
// per request without mutating the shared base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Identity = IdentityConfig{
		Emails: cloneSet(c.Identity.Emails),
		Names:  cloneSet(c.Identity.Names),
	}
	clone.Filters = FilterConfig{
		IgnoreBasenames:  cloneSet(c.Filters.IgnoreBasenames),
		IgnoreExtensions: cloneSet(c.Filters.IgnoreExtensions),
	}
	clone.SkipDirs = cloneSet(c.SkipDirs)
	if c.Languages != nil {
		clone.Languages = make(map[string]string, len(c.Languages))
		maps.Copy(clone.Languages, c.Languages)
	}
	return &clone
}

func cloneSet(src map[string]struct{}) map[string]struct{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]struct{}, len(src))
	maps.Copy(dst, src)
	return dst
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := processRootPath(cfg, input); err != nil {
		return err
	}
	if err := processIdentity(cfg, input); err != nil {
		return err
	}
	processFilters(cfg, input)
	processLanguages(cfg, input)

	cfg.OutputFile = input.OutputFile
	if cfg.OutputFile == "" {
		cfg.OutputFile = schema.DefaultDatasetFile
	}
	cfg.ParquetFile = input.ParquetFile

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return processLedgerBackend(cfg, input)
}

// ProcessDiscoveryOnly parses just the settings needed to walk the tree and
// print what was found. Commands that never read history use this instead of
// ProcessAndValidate, so they work without a configured identity.
func ProcessDiscoveryOnly(cfg *Config, input *ConfigRawInput) error {
	if err := processRootPath(cfg, input); err != nil {
		return err
	}
	processFilters(cfg, input)

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	if input.Color != "" {
		colors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		cfg.UseColors = colors
	}
	return nil
}

// processRootPath resolves and checks the discovery root.
func processRootPath(cfg *Config, input *ConfigRawInput) error {
	root := input.RootPathStr
	if root == "" {
		root = "."
	}
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot expand '~' in root path: %w", err)
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("root path %q is not accessible: %w", absRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %q is not a directory", absRoot)
	}
	cfg.RootPath = filepath.Clean(absRoot)
	return nil
}

// processIdentity builds the immutable identity sets.
func processIdentity(cfg *Config, input *ConfigRawInput) error {
	emails := make(map[string]struct{}, len(input.Emails))
	for _, e := range input.Emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails[e] = struct{}{}
		}
	}
	names := make(map[string]struct{}, len(input.Names))
	for _, n := range input.Names {
		n = strings.TrimSpace(n)
		if n != "" {
			names[n] = struct{}{}
		}
	}
	if len(emails) == 0 && len(names) == 0 {
		return fmt.Errorf("no target identity configured: set at least one email or name via --emails/--names, FOOTPRINT_EMAILS, or the config file")
	}
	cfg.Identity = IdentityConfig{Emails: emails, Names: names}
	return nil
}

// processFilters merges the default ignore sets with user extras.
func processFilters(cfg *Config, input *ConfigRawInput) {
	basenames := make(map[string]struct{})
	for _, b := range schema.DefaultIgnoreBasenames {
		basenames[b] = struct{}{}
	}
	for _, b := range input.IgnoreFiles {
		b = strings.TrimSpace(b)
		if b != "" {
			basenames[b] = struct{}{}
		}
	}

	exts := make(map[string]struct{})
	for _, e := range schema.DefaultIgnoreExtensions {
		exts[strings.ToLower(e)] = struct{}{}
	}
	for _, e := range input.IgnoreExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = struct{}{}
	}
	cfg.Filters = FilterConfig{IgnoreBasenames: basenames, IgnoreExtensions: exts}

	skip := make(map[string]struct{})
	for _, d := range schema.DefaultSkipDirs {
		skip[d] = struct{}{}
	}
	for _, d := range input.SkipDirs {
		d = strings.TrimSpace(d)
		if d != "" {
			skip[d] = struct{}{}
		}
	}
	cfg.SkipDirs = skip
}

// processLanguages merges the default extension table with user overrides.
func processLanguages(cfg *Config, input *ConfigRawInput) {
	table := make(map[string]string, len(schema.DefaultLanguageTable))
	for ext, lang := range schema.DefaultLanguageTable {
		table[ext] = lang
	}
	for ext, lang := range input.Languages {
		ext = strings.ToLower(strings.TrimSpace(ext))
		lang = strings.TrimSpace(lang)
		if ext == "" || lang == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") && ext != "dockerfile" {
			ext = "." + ext
		}
		table[ext] = lang
	}
	cfg.Languages = table
}

// processLedgerBackend validates the run ledger settings.
func processLedgerBackend(cfg *Config, input *ConfigRawInput) error {
	cfg.LedgerBackend = schema.DatabaseBackend(strings.ToLower(input.LedgerBackend))
	if cfg.LedgerBackend == "" {
		cfg.LedgerBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.LedgerBackend]; !ok {
		return fmt.Errorf("invalid ledger backend '%s'. must be sqlite, mysql, postgresql, none", input.LedgerBackend)
	}
	cfg.LedgerDBConnect = input.LedgerDBConnect
	return ValidateDatabaseConnectionString(cfg.LedgerBackend, cfg.LedgerDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for the MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("ledger-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("ledger-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
