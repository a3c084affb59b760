package ports

import "os/exec"

// EditorOpener launches the user's editor on a file
type EditorOpener interface {
	// Command returns an exec.Cmd editing path.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
