// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is the executable name reported when os.Args is empty.
const FallbackName = "ddd-scaffolder"

// GetExecutableName returns the name the binary was invoked as, without
// directories or a ".exe" suffix, for use in help text and examples.
// Windows paths are split on backslashes on every OS.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := filepath.Base(os.Args[0])
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, ".exe")
}
