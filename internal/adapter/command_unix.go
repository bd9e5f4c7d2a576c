//go:build unix

package adapter

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup puts the command in its own process group so that a
// timeout kills everything it spawned, not only the direct child.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
