//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid so Chrome's
// renderer and GPU helpers die with it. Non-positive PIDs are ignored.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// launcher.Kill already ran; remaining children are best-effort.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
