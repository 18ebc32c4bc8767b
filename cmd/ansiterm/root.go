package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/ansiterm/terminal"
)

const envPrefix = "ANSITERM"

// app carries the state shared by all subcommands
type app struct {
	v        *viper.Viper
	log      zerolog.Logger
	closeLog func() error
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		v:        viper.New(),
		log:      zerolog.Nop(),
		closeLog: func() error { return nil },
	}
	var cfgFile string

	root := &cobra.Command{
		Use:   "ansiterm",
		Short: "Terminal mode switching and ANSI escape output",
		Long: `Drives the terminal through raw and cooked line discipline and emits
typed ANSI escape sequences. The captured terminal state is always restored
on exit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cfgFile); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger, closer, err := setupLogging(a.v.GetString("log.file"), a.v.GetString("log.level"))
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			a.log, a.closeLog = logger, closer
			a.log.Debug().Str("command", cmd.Name()).Msg("starting")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-file", "", "write JSON logs to this file (rotated)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.Bool("stderr", false, "also manage the standard error stream")

	a.v.BindPFlag("log.file", flags.Lookup("log-file"))
	a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	a.v.BindPFlag("terminal.stderr", flags.Lookup("stderr"))

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newColorsCmd(a), newSwatchCmd(a), newRawCmd(a))
	return root, a
}

func (a *app) loadConfig(path string) error {
	if path == "" {
		return nil
	}
	a.v.SetConfigFile(path)
	return a.v.ReadInConfig()
}

// termOptions returns the terminal options implied by configuration, followed by extra
func (a *app) termOptions(extra ...terminal.Option) []terminal.Option {
	opts := []terminal.Option{terminal.WithLogger(a.log)}
	if a.v.GetBool("terminal.stderr") {
		opts = append(opts, terminal.WithStderr())
	}
	return append(opts, extra...)
}

func (a *app) close() {
	if err := a.closeLog(); err != nil {
		a.log.Warn().Err(err).Msg("could not close log file")
	}
}
