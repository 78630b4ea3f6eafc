// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"os"

	codegen "github.com/mattes3/mcp4ddd/src/internal/tools/codegen/internal"
)

func main() {
	if err := codegen.GenerateReference(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating tool reference: %v\n", err)
		os.Exit(1)
	}
}
