// Command openrazer inspects and controls devices managed by an openrazer
// daemon over D-Bus
package main

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	razer "github.com/z3ntu/libqopenrazer"
	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol"
	"github.com/z3ntu/libqopenrazer/transport"
)

var (
	manager *razer.Manager

	cfgFile string

	logger = logrus.New()
	app    = &cobra.Command{
		Use:   `openrazer`,
		Short: `inspect and control devices of an openrazer daemon`,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setLogger()
		},
	}

	cmdVersion = &cobra.Command{
		Use:   `version`,
		Short: `print the library version`,
		Run: func(c *cobra.Command, args []string) {
			fmt.Printf("openrazer v%s\n", razer.VERSION)
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: "generate bash completion at <file>",
		Run:   generateBashComp,
	}
)

func init() {
	razer.SetLogger(logger)

	app.PersistentFlags().StringVar(&cfgFile, `config`, ``, `config file (default is ./openrazer.yaml)`)
	app.PersistentFlags().StringP(`backend`, `b`, common.DialectLegacy.String(), `daemon to talk to, one of: [openrazer,razer_test]`)
	app.PersistentFlags().String(`bus`, string(transport.SessionBus), `message bus the daemon is on, one of: [session,system]`)
	app.PersistentFlags().StringP(`log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)
	for _, name := range []string{`backend`, `bus`, `log-level`} {
		if err := viper.BindPFlag(name, app.PersistentFlags().Lookup(name)); err != nil {
			logger.WithError(err).Fatalln(`Failed binding flag`)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(`OPENRAZER`)
	viper.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))

	cobra.OnInitialize(initConfig)

	app.AddCommand(cmdDaemon)
	app.AddCommand(cmdDevices)
	app.AddCommand(cmdDevice)
	app.AddCommand(cmdLed)
	app.AddCommand(cmdVersion)
	app.AddCommand(cmdGenerateBashComp)
}

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != `` {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger.WithError(err).Fatalln(`Could not find home directory`)
		}

		viper.AddConfigPath(`.`)
		viper.AddConfigPath(path.Join(home, `.openrazer`))
		viper.AddConfigPath(`/etc/openrazer/`)
		viper.SetConfigName(`openrazer`)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.WithError(err).Warnln(`Can't read config`)
		}
		return
	}
	logger.WithField(`file`, viper.ConfigFileUsed()).Debugln(`Using config file`)
}

// newProtocol picks the dialect from the backend setting.
func newProtocol(backend, bus string) (protocol.Protocol, error) {
	var b transport.Bus
	switch bus {
	case string(transport.SessionBus), ``:
		b = transport.SessionBus
	case string(transport.SystemBus):
		b = transport.SystemBus
	default:
		return nil, errors.Errorf(`unknown bus %q`, bus)
	}

	switch backend {
	case common.DialectLegacy.String():
		return &protocol.Legacy{Bus: b}, nil
	case common.DialectUnified.String():
		return &protocol.Unified{Bus: b}, nil
	default:
		return nil, errors.Errorf(`unknown backend %q`, backend)
	}
}

func setupManager(c *cobra.Command, args []string) {
	p, err := newProtocol(viper.GetString(`backend`), viper.GetString(`bus`))
	if err != nil {
		logger.WithError(err).Fatalln(`Invalid configuration`)
	}
	manager = razer.NewManager(p)
}

func closeManager(c *cobra.Command, args []string) {
	if err := manager.Close(); err != nil {
		logger.WithError(err).Fatalln(`Failed closing manager`)
	}
}

func generateBashComp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing filename`)
	}

	buf := new(bytes.Buffer)
	f, err := os.Create(args[0])
	if err != nil {
		logger.WithFields(logrus.Fields{
			`filename`: args[0],
			`error`:    err,
		}).Fatalln(`Could not open file`)
	}
	defer f.Close()
	if err := app.GenBashCompletion(buf); err != nil {
		logger.WithError(err).Fatalln(`Could not generate completion`)
	}
	if _, err := buf.WriteTo(f); err != nil {
		logger.WithError(err).Fatalln(`Could not write completion`)
	}
}

func usage(c *cobra.Command, args []string) {
	_ = c.Usage()
}

func setLogger() {
	level, err := logrus.ParseLevel(viper.GetString(`log-level`))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}
