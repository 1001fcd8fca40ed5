package service

import (
	"fmt"
	"os/exec"
	"runtime"
)

// linuxOpeners are tried in order when opening a page on Linux.
var linuxOpeners = []string{"xdg-open", "gnome-open", "kde-open"}

// OpenBrowser opens a generated dashboard page or report in the default
// browser. The path may be a local file path; the platform opener resolves it.
func OpenBrowser(target string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{target}
	case "linux":
		for _, opener := range linuxOpeners {
			if _, err := exec.LookPath(opener); err == nil {
				name = opener
				args = []string{target}
				break
			}
		}
		if name == "" {
			return fmt.Errorf("no suitable browser opener found for Linux")
		}
	case "windows":
		name = "cmd"
		args = []string{"/c", "start", target}
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	// Start, not Run: the dashboard command must not block on the browser.
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
