//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-kills pid and its children with taskkill (/F force,
// /T tree). Non-positive pids are ignored.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	// Error ignored: the tree may already be gone after launcher.Kill.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- numeric pid
}
