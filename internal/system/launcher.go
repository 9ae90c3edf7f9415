// Package system wraps the OS collaborators: spawning detached processes,
// enumerating ROM files, and reading system info for the About screen.
package system

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/charmbracelet/log"
)

// Launcher spawns shell commands fire-and-forget. The menu never waits on a
// child and never observes its exit status; a command that fails to even
// start is logged and otherwise ignored.
type Launcher struct {
	log *log.Logger
}

func NewLauncher(logger *log.Logger) *Launcher {
	return &Launcher{log: logger}
}

// Spawn runs command via the shell in its own session, detached from the
// UI's terminal, and releases the handle immediately.
func (l *Launcher) Spawn(command string) {
	if command == "" {
		return
	}
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		if l.log != nil {
			l.log.Error("spawn failed", "cmd", command, "err", err)
		}
		return
	}
	if l.log != nil {
		l.log.Info("spawned", "cmd", command, "pid", cmd.Process.Pid)
	}
	// Reap in the background so the child never zombies; nothing consumes
	// the result.
	go func() { _ = cmd.Wait() }()
}

// SpawnQuoted runs a command with a single shell-quoted argument appended,
// used for ROM launches where filenames carry spaces.
func (l *Launcher) SpawnQuoted(command, arg string) {
	l.Spawn(fmt.Sprintf("%s %q", command, arg))
}
