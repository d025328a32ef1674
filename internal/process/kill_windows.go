//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Group is a no-op on Windows; taskkill /T handles the process tree instead.
func Group(cmd *exec.Cmd) {}

// KillGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) {
	// Best-effort cleanup; the caller still kills the process itself.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
