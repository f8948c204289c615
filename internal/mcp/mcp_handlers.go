package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mlcortez/footprint/core"
	"github.com/mlcortez/footprint/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleMineFootprint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("root_path", ""); p != "" {
		root, err := resolveRootPath(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid root_path: %v", err)), nil
		}
		cfg.RootPath = root
	}
	emails := request.GetString("emails", "")
	names := request.GetString("names", "")
	if emails != "" || names != "" {
		// A request-supplied identity replaces the configured one entirely.
		cfg.Identity = contract.IdentityConfig{
			Emails: splitToSet(emails, true),
			Names:  splitToSet(names, false),
		}
	}
	if len(cfg.Identity.Emails) == 0 && len(cfg.Identity.Names) == 0 {
		return mcp.NewToolResultError("no target identity configured: provide emails or names"), nil
	}

	dataset, err := core.MineFootprint(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mining failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(dataset, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRepositories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("root_path", ""); p != "" {
		root, err := resolveRootPath(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid root_path: %v", err)), nil
		}
		cfg.RootPath = root
	}

	repos := core.DiscoverRepositories(cfg.RootPath, cfg.SkipDirs)
	jsonData, _ := json.MarshalIndent(repos, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// resolveRootPath checks that a request-supplied root exists and is a
// directory, returning its absolute form.
func resolveRootPath(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", absRoot)
	}
	return filepath.Clean(absRoot), nil
}

// splitToSet turns a comma-separated list into a set, lower-casing entries
// when they are emails.
func splitToSet(list string, lower bool) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if lower {
			item = strings.ToLower(item)
		}
		set[item] = struct{}{}
	}
	return set
}
