package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LocalPath returns the path of the override file that sits next to `name`,
// ex. "hhdash.json5" -> "hhdash.local.json5".
func LocalPath(name string) string {
	prefix, ext := splitExt(filepath.Base(name))
	if ext == "" {
		return filepath.Join(filepath.Dir(name), prefix+".local")
	}
	return filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefix, ext),
	)
}

func readJson5[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(contents) == 0 {
		return out, false, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, true, nil
}

// ReadConfig reads a configuration file, `name` should come with a file extension.
// the following files are merged, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// os.ErrNotExist is returned if neither file exists.
func ReadConfig[T any](name string) (T, error) {
	out, found, err := readJson5[T](name)
	if err != nil {
		return out, err
	}

	localPath := LocalPath(name)
	override, foundLocal, err := readJson5[T](localPath)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Debug("merging config with local overrides", "local", localPath)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively is ReadConfig but it goes up the filesystem from `start`
// until the root to find a configuration file matching the name.
func ReadRecursively[T any](start, name string) (T, string, error) {
	var zero T

	current, err := filepath.Abs(start)
	if err != nil {
		return zero, "", err
	}

	for {
		path := filepath.Join(current, name)
		config, err := ReadConfig[T](path)
		if err == nil {
			return config, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return zero, "", err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, "", os.ErrNotExist
		}
		current = parent
	}
}

// ReadWithDefaults merges whatever config is found for `name` on top of
// `defaults`. a missing file is not an error.
func ReadWithDefaults[T any](start, name string, defaults T) (T, error) {
	found, path, err := ReadRecursively[T](start, name)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}

	out := defaults
	err = mergo.Merge(&out, found, mergo.WithOverride)
	if err != nil {
		return defaults, err
	}
	slog.Debug("loaded config", "path", path)
	return out, nil
}
