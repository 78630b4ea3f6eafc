// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "installed binary", args: []string{"/usr/local/bin/ddd-scaffolder", "list"}, want: "ddd-scaffolder"},
		{name: "relative path", args: []string{"./ddd-scaffolder"}, want: "ddd-scaffolder"},
		{name: "windows path", args: []string{`C:\tools\ddd-scaffolder.exe`}, want: "ddd-scaffolder"},
		{name: "go test binary", args: []string{"/tmp/go-build1/b001/mcp-server.test"}, want: "mcp-server.test"},
		{name: "empty args", args: []string{}, want: FallbackName},
		{name: "empty first arg", args: []string{""}, want: FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := os.Args
			t.Cleanup(func() { os.Args = saved })

			os.Args = tt.args
			assert.Equal(t, tt.want, GetExecutableName())
		})
	}
}
