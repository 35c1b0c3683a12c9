package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configBaseName = "config"

// findUserConfig returns the --config value from args, falling back to
// OASDOTNET_CONFIG. kong has not parsed anything yet at this point.
func findUserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("OASDOTNET_CONFIG")
}

// configCandidatePaths returns config file candidates per format. An explicit
// file is used alone, routed by extension; otherwise the working directory's
// .oasdotnet.* files take priority over the user config directory's.
// Missing files are skipped by kong.
func configCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(p string) {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".json":
			jsonPaths = append(jsonPaths, p)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, p)
		case ".toml":
			tomlPaths = append(tomlPaths, p)
		}
	}

	if userCfg != "" {
		add(userCfg)
		return jsonPaths, yamlPaths, tomlPaths
	}

	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		add(".oasdotnet" + ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
			add(filepath.Join(dir, "oasdotnet", configBaseName+ext))
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}

// checkUserConfig rejects an explicit config file that kong would otherwise
// skip silently.
func checkUserConfig(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
	default:
		return fmt.Errorf("unsupported config file %q: use .json, .yaml, .yml or .toml", path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	return nil
}
