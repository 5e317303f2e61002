// SPDX-License-Identifier: EPL-2.0

package wavio

import (
	"fmt"
	"os"
	"path/filepath"
)

// PreflightWritable reports whether a file can be created at path without
// touching path itself: it creates and removes a probe file in the same
// directory. An existing regular file at path is fine, since writers
// truncate it.
func PreflightWritable(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s", ErrPathIsDirectory, path)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("checking %s: %w", path, err)
	}

	probe, err := os.CreateTemp(filepath.Dir(path), ".wavio-preflight-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", path, err)
	}

	name := probe.Name()
	cerr := probe.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("removing probe %s: %w", name, err)
	}
	if cerr != nil {
		return fmt.Errorf("closing probe %s: %w", name, cerr)
	}

	return nil
}
