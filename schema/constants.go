package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the console output.
	OutputMode string

	// DatabaseBackend represents the database backend for the run ledger.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All ledger backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid ledger backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Session heuristic constants. A gap shorter than SessionGap between two
// consecutive commits counts as continuous work; anything longer starts a
// new session credited with SessionSeed.
const (
	SessionSeed = time.Hour
	SessionGap  = 2 * time.Hour
)

// DefaultDatasetFile is where the mined dataset lands unless overridden.
const DefaultDatasetFile = "repo_aware_history.json"

// DefaultSkipDirs are directory names pruned during repository discovery.
// They bound traversal cost on dependency-heavy trees.
var DefaultSkipDirs = []string{
	".git",
	"node_modules",
	"venv",
	"target",
	"dist",
	"build",
	"vendor",
	"deps",
	"__pycache__",
}

// DefaultIgnoreBasenames are exact file names whose churn never counts.
// These are dependency lock files, not code.
var DefaultIgnoreBasenames = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"composer.lock",
	"Cargo.lock",
	"Gemfile.lock",
	"poetry.lock",
}

// DefaultIgnoreExtensions are file extensions whose churn never counts:
// binary, generated and data formats that inflate line counts without
// representing written code. Compound entries like ".min.js" match the
// last two extension segments.
var DefaultIgnoreExtensions = []string{
	".lock",
	".svg",
	".map",
	".csv",
	".tsv",
	".min.js",
	".min.css",
	".jsonl",
	".ipynb",
	".png",
	".jpg",
	".jpeg",
	".gif",
	".ico",
	".webp",
}

// DefaultLanguageTable maps file extensions to language labels for the
// present-day snapshot. The bare "dockerfile" entry matches files named
// Dockerfile that carry no extension at all.
var DefaultLanguageTable = map[string]string{
	".py":         "Python",
	".js":         "JavaScript",
	".ts":         "TypeScript",
	".rs":         "Rust",
	".html":       "HTML",
	".css":        "CSS",
	".scss":       "CSS",
	".c":          "C",
	".h":          "C",
	".hpp":        "C++",
	".cpp":        "C++",
	".cc":         "C++",
	".cu":         "CUDA",
	".cuh":        "CUDA",
	".java":       "Java",
	".go":         "Go",
	".rb":         "Ruby",
	".php":        "PHP",
	".sh":         "Shell",
	".bash":       "Shell",
	".zsh":        "Shell",
	".md":         "Markdown",
	".json":       "JSON",
	".yaml":       "YAML",
	".yml":        "YAML",
	".sql":        "SQL",
	".dockerfile": "Docker",
	"dockerfile":  "Docker",
	".xml":        "XML",
	".vue":        "Vue",
	".jsx":        "React",
	".tsx":        "React",
	".toml":       "TOML",
	".lua":        "Lua",
}
