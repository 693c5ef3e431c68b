package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/z3ntu/libqopenrazer/common"
)

var (
	cmdDaemon = &cobra.Command{
		Use:               `daemon`,
		Short:             `daemon related commands`,
		PersistentPreRun:  setupDaemon,
		PersistentPostRun: closeManager,
		Run:               usage,
	}

	cmdDaemonStatus = &cobra.Command{
		Use:   `status`,
		Short: `show whether the daemon is running and its unit enabled`,
		Run:   daemonStatus,
	}

	cmdDaemonOutput = &cobra.Command{
		Use:   `output`,
		Short: `print the systemctl status of the daemon's unit`,
		Run:   daemonOutput,
	}

	cmdDaemonEnable = &cobra.Command{
		Use:   `enable`,
		Short: `enable the daemon's unit so it starts on login`,
		Run:   daemonEnable,
	}
)

func init() {
	cmdDaemon.AddCommand(cmdDaemonStatus)
	cmdDaemon.AddCommand(cmdDaemonOutput)
	cmdDaemon.AddCommand(cmdDaemonEnable)
}

// setupDaemon runs the root pre-run too, cobra only runs the closest one.
func setupDaemon(c *cobra.Command, args []string) {
	setLogger()
	setupManager(c, args)
}

func daemonStatus(c *cobra.Command, args []string) {
	fmt.Printf("Backend:  %s\n", manager.Dialect())
	if version, err := manager.DaemonVersion(); err != nil {
		logger.WithError(err).Debugln(`Daemon did not answer`)
		fmt.Println(`Running:  no`)
	} else {
		fmt.Printf("Running:  yes (version %s)\n", version)
	}

	status := manager.DaemonStatus()
	fmt.Printf("Unit:     %s\n", status)
	if status == common.DaemonStatusDisabled {
		fmt.Println(`Run 'openrazer daemon enable' to start the daemon on login.`)
	}
}

func daemonOutput(c *cobra.Command, args []string) {
	out, err := manager.DaemonStatusOutput()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not query systemd`)
	}
	fmt.Println(out)
}

func daemonEnable(c *cobra.Command, args []string) {
	if err := manager.EnableDaemon(); err != nil {
		logger.WithError(err).Fatalln(`Could not enable daemon`)
	}
	logger.Infoln(`Daemon enabled`)
}
