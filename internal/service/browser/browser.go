// Package browser opens directories in the platform file browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedOS indicates the current OS has no known file browser command.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Open shows the provided directory in the platform file browser:
// - Windows:     `cmd.exe /C start "" <path>` (Explorer)
// - macOS:       `open <path>` (Finder)
// - Linux:       `xdg-open <path>`
// The commands are started asynchronously; the desktop takes over the rest.
func Open(ctx context.Context, path string) error {
	osName := strings.ToLower(runtime.GOOS)

	switch {
	case strings.Contains(osName, "windows"):
		return exec.CommandContext(ctx, "cmd.exe", "/C", "start", "", path).Start()
	case strings.Contains(osName, "darwin"):
		return exec.CommandContext(ctx, "open", path).Start()
	case strings.Contains(osName, "linux"):
		return exec.CommandContext(ctx, "xdg-open", path).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s: %w", runtime.GOOS, ErrUnsupportedOS)
	}
}
