//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid, which takes down
// Chrome's renderer and GPU helpers with it. Non-positive pids are ignored.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	// Error ignored: the group may already be gone after launcher.Kill.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
