package host

import (
	"os"
	"os/exec"
)

// process is a running secondary window
type process interface {
	Kill() error
	Wait() error
}

// launcher starts the current binary with args
type launcher func(args []string) (process, error)

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Kill() error { return p.cmd.Process.Kill() }
func (p *execProcess) Wait() error { return p.cmd.Wait() }

func selfLauncher(args []string) (process, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(exe, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}
