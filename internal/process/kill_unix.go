//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Group places cmd in its own process group so that cancellation can reach
// the children a typesetter spawns, such as biber or makeindex.
func Group(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillGroup kills a process and all its children by sending SIGKILL to the
// process group (negative PID).
func KillGroup(pid int) {
	// Best-effort cleanup; the caller still kills the process itself.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
