// Package systemd reports whether a daemon's systemd unit is installed and
// enabled, by running systemctl.
package systemd

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/z3ntu/libqopenrazer/common"
)

// ErrNotStarted is returned by a Runner when the command could not be
// started at all, e.g. because systemctl does not exist.
var ErrNotStarted = errors.New(`command could not be started`)

// Runner runs a command to completion and returns its output. A non-zero
// exit is returned as a non-nil error alongside the output.
type Runner interface {
	Run(name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			err = errors.Wrap(ErrNotStarted, execErr.Error())
		}
	}
	return stdout.String(), stderr.String(), err
}

// Unit is a systemd unit backing a daemon.
type Unit struct {
	// Name is the unit name, e.g. `openrazer-daemon.service`
	Name string
	// Binary is the daemon executable, used to tell a missing daemon from
	// a missing systemd
	Binary string
	// Runner defaults to ExecRunner
	Runner Runner
	// Stat defaults to os.Stat
	Stat func(name string) (os.FileInfo, error)
}

func (u *Unit) run(args ...string) (string, string, error) {
	r := u.Runner
	if r == nil {
		r = ExecRunner{}
	}
	return r.Run(`systemctl`, append(args, u.Name)...)
}

func (u *Unit) binaryExists() bool {
	stat := u.Stat
	if stat == nil {
		stat = os.Stat
	}
	_, err := stat(u.Binary)
	return err == nil
}

// Status classifies the output of `systemctl is-enabled`. The result is a
// best guess, a unit may be enabled without the daemon being installed.
func (u *Unit) Status() common.DaemonStatus {
	stdout, stderr, err := u.run(`is-enabled`)
	switch {
	case stdout == "enabled\n":
		return common.DaemonStatusEnabled
	case stdout == "disabled\n":
		return common.DaemonStatusDisabled
	case stderr == "Failed to get unit file state for "+u.Name+": No such file or directory\n":
		return common.DaemonStatusNotInstalled
	case errors.Is(err, ErrNotStarted):
		// No systemctl: non-systemd distributions and sandboxes
		if !u.binaryExists() {
			return common.DaemonStatusNotInstalled
		}
		return common.DaemonStatusNoSystemd
	default:
		common.Log.Warnf("There was an error checking if the daemon is enabled. Unit state is: %q. Error message: %q", stdout, stderr)
		return common.DaemonStatusUnknown
	}
}

// StatusOutput returns the output of `systemctl status`, stdout and stderr
// separated by a newline.
func (u *Unit) StatusOutput() (string, error) {
	stdout, stderr, err := u.run(`status`)
	if errors.Is(err, ErrNotStarted) {
		return ``, err
	}
	return stdout + "\n" + stderr, nil
}

// Enable enables the unit so the daemon starts on login.
func (u *Unit) Enable() error {
	_, stderr, err := u.run(`enable`)
	if err != nil {
		return errors.Wrapf(err, `enabling %s: %s`, u.Name, stderr)
	}
	return nil
}
