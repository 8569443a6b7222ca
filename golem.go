// This file is part of Golem.
//
// Golem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Golem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Golem.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

// SDL requires events to be polled from the thread that initialised the
// video subsystem. the core loop runs in the main goroutine.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)
	atexit.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// global flags shared by every command
type globals struct {
	prefsPath string
	logLevel  string
	echo      bool
}

// usageError is an error in the command line.
type usageError struct {
	error
}

func (e usageError) Unwrap() error {
	return e.error
}

func execute(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "* error in %s: %v\n", cmd.CommandPath(), err)
		if errors.As(err, &usageError{}) || cmd == root {
			return exitParse
		}
		return exitMode
	}

	return exitOK
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "golem",
		Short:         "FPGA core manager",
		Long:          fmt.Sprintf("%s loads cores onto the FPGA and runs them.", version.ApplicationName),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.echo {
				logger.SetEcho(cmd.ErrOrStderr(), false)
			}

			// environment files are read from the working directory
			pushed, err := settings.LoadEnv(".")
			if err != nil {
				return err
			}
			if pushed {
				logger.Logf(logger.Allow, "golem", "preferences from %s", settings.PrefsEnv)
			}

			return g.applyLogLevel()
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&g.prefsPath, "prefs", "", "preferences file (default in the resources directory)")
	root.PersistentFlags().StringVar(&g.logLevel, "log", "", "log level: info, debug, trace")
	root.PersistentFlags().BoolVar(&g.echo, "echo", false, "echo log to stderr")

	root.AddCommand(
		newRunCmd(g),
		newCatalogCmd(),
		newUnwrapCmd(),
		newWrapCmd(),
		newVersionCmd(),
	)

	return root
}

// the log level from the command line takes precedence over the log level
// preference. the function is called again after the preferences are loaded
func (g *globals) applyLogLevel() error {
	if g.logLevel == "" {
		return nil
	}
	l, err := logger.ParseLevel(g.logLevel)
	if err != nil {
		return usageError{err}
	}
	logger.SetLevel(l)
	return nil
}

// openSettings opens the preferences named by the --prefs flag. The settings
// are closed, and saved, when the program exits.
func (g *globals) openSettings() (*settings.Settings, error) {
	st, err := settings.NewSettings(g.prefsPath)
	if err != nil {
		return nil, err
	}
	atexit.Register(func() {
		if err := st.Close(); err != nil {
			logger.Log(logger.Allow, "golem", err)
		}
	})
	return st, g.applyLogLevel()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
