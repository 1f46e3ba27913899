package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxTargetSize bounds edge lengths accepted from a targets file.
const MaxTargetSize = 4096

// LoadTargets reads a JSON object mapping relative output paths to square
// icon edge lengths.
func LoadTargets(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var targets map[string]int
	if err := json.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("targets file %s has no entries", path)
	}
	for target, size := range targets {
		if err := validateTarget(target, size); err != nil {
			return nil, fmt.Errorf("targets file %s: %w", path, err)
		}
	}
	return targets, nil
}

// SaveTargets writes targets as indented JSON with keys in sorted order.
func SaveTargets(path string, targets map[string]int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(targets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(payload, '\n'), 0o644)
}

func validateTarget(target string, size int) error {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return fmt.Errorf("empty target path")
	}
	if filepath.IsAbs(trimmed) || strings.HasPrefix(trimmed, "/") {
		return fmt.Errorf("target %q must be relative", target)
	}
	for _, part := range strings.Split(filepath.ToSlash(trimmed), "/") {
		if part == ".." {
			return fmt.Errorf("target %q escapes the export directory", target)
		}
	}
	if size < 1 || size > MaxTargetSize {
		return fmt.Errorf("target %q size %d outside 1..%d", target, size, MaxTargetSize)
	}
	return nil
}
