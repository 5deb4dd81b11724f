// Copyright (c) 2025 BVK Chaitanya

package envfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type options struct {
	variableNamePrefix string

	searchDirectory string

	scanParentDirectories bool

	overwriteIfExists bool
}

// UpdateEnv updates current process's environment with the values read from
// the first env file found on the search path. By default, only the user's
// home directory is searched. The search path and other behaviors can be
// changed by the input options.
//
// File contents are parsed with the godotenv package, so comments, quoted
// values and "export" prefixes are supported. Returns the path of the file
// that was loaded or an empty string if no file was found.
func UpdateEnv(filename string, opts ...Option) (string, error) {
	if strings.ContainsRune(filename, os.PathSeparator) {
		return "", fmt.Errorf("file name contains path separator: %w", os.ErrInvalid)
	}
	var fopts options
	for _, v := range opts {
		if err := v.apply(&fopts); err != nil {
			return "", err
		}
	}
	fpaths, err := searchPaths(filename, &fopts)
	if err != nil {
		return "", err
	}
	for _, fpath := range fpaths {
		values, err := godotenv.Read(fpath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("could not parse env file %q: %w", fpath, err)
		}
		for key, value := range values {
			if !prefixRe.MatchString(key) {
				return "", fmt.Errorf("invalid environment variable name %q in %q: %w", key, fpath, os.ErrInvalid)
			}
			key = fopts.variableNamePrefix + key
			if len(os.Getenv(key)) != 0 && !fopts.overwriteIfExists {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return "", err
			}
		}
		slog.Debug("loaded environment file", "path", fpath, "variables", len(values))
		return fpath, nil
	}
	return "", nil
}

func searchPaths(filename string, fopts *options) ([]string, error) {
	if len(fopts.searchDirectory) == 0 {
		user, err := user.Current()
		if err != nil {
			return nil, err
		}
		if len(user.HomeDir) == 0 {
			return nil, fmt.Errorf("could not determine current user's home directory")
		}
		return []string{filepath.Join(user.HomeDir, filename)}, nil
	}

	dir, err := filepath.Abs(fopts.searchDirectory)
	if err != nil {
		return nil, err
	}
	fpaths := []string{filepath.Join(dir, filename)}
	if fopts.scanParentDirectories {
		last, dir := dir, filepath.Dir(dir)
		for dir != last {
			fpaths = append(fpaths, filepath.Join(dir, filename))
			last, dir = dir, filepath.Dir(dir)
		}
	}
	return fpaths, nil
}
