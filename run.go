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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/golem-fpga/golem/application"
	"github.com/golem-fpga/golem/bootcore"
	"github.com/golem-fpga/golem/catalog"
	"github.com/golem-fpga/golem/coreloop"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/fpga/devmem"
	"github.com/golem-fpga/golem/fpga/simulated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/menucore"
	"github.com/golem-fpga/golem/performance"
	"github.com/golem-fpga/golem/sdlinput"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/statsview"
	"github.com/golem-fpga/golem/terminput"
	"github.com/golem-fpga/golem/userinput"
	"github.com/golem-fpga/golem/version"
)

// list of platforms for the --platform flag
const (
	platformDE10 = "de10"
	platformSim  = "sim"
)

// list of input sources for the --input flag
const (
	inputAuto = "auto"
	inputSDL  = "sdl"
	inputTerm = "term"
	inputNone = "none"
)

type runFlags struct {
	core      string
	id        int
	platform  string
	input     string
	simConfig string
	showMenu  bool
	statsview bool
	profile   string
	catalog   string
}

func newRunCmd(g *globals) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a core",
		Long: `Run a core until the user quits it. The core is named with --core or with
--id. If neither is given the boot-core preference decides which core, if any,
is run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.core != "" && f.id != 0 {
				return usageError{fmt.Errorf("--core and --id cannot be used together")}
			}
			profile, err := performance.ParseProfileString(f.profile)
			if err != nil {
				return usageError{err}
			}
			return performance.RunProfiler(profile, "golem", func() error {
				return run(cmd, g, f)
			})
		},
	}

	cmd.Flags().StringVar(&f.core, "core", "", "core file to run")
	cmd.Flags().IntVar(&f.id, "id", 0, "catalog key of the core to run")
	cmd.Flags().StringVar(&f.platform, "platform", platformDE10, "platform: de10, sim")
	cmd.Flags().StringVar(&f.input, "input", inputAuto, "input source: auto, sdl, term, none")
	cmd.Flags().StringVar(&f.simConfig, "simconfig", "SIM;V,v0", "config string of cores on the sim platform")
	cmd.Flags().BoolVar(&f.showMenu, "menu", false, "show the core menu before running the core")
	cmd.Flags().BoolVar(&f.statsview, "statsview", false, "run stats server")
	cmd.Flags().StringVar(&f.profile, "profile", "none", "profile: cpu, mem, trace, all")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "catalog file (default in the resources directory)")

	return cmd
}

func run(cmd *cobra.Command, g *globals, f *runFlags) error {
	logger.Log(logger.Allow, "golem", version.String())

	st, err := g.openSettings()
	if err != nil {
		return err
	}

	cat, err := catalog.StartSession(f.catalog)
	if err != nil {
		return err
	}
	atexit.Register(func() { cat.EndSession() })

	menu := menucore.Program()

	drv, err := openDriver(f, menu)
	if err != nil {
		return err
	}
	dev := fpga.NewDevice(drv)
	defer dev.Close()

	src, err := openInput(f.input)
	if err != nil {
		return err
	}
	defer src.Close()

	if f.statsview || st.StatsView.Get().(bool) {
		srv := statsview.Launch(cmd.OutOrStdout(), statsview.Address)
		defer srv.Stop()
	}

	app := application.NewApplication(dev, menu, st, application.WithCatalog(cat))

	if _, err := app.Manager().LoadMenu(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = launch(ctx, cmd, app, st, src, f)

	// an interrupt is the normal way of ending a core when there is no input
	if errors.Is(err, context.Canceled) {
		logger.Log(logger.Allow, "golem", "interrupted")
		return nil
	}

	return err
}

func launch(ctx context.Context, cmd *cobra.Command, app *application.Application, st *settings.Settings, src inputSource, f *runFlags) error {
	switch {
	case f.core != "":
		return app.LaunchCore(ctx, f.core, src, f.showMenu)
	case f.id != 0:
		return app.LaunchEntry(ctx, f.id, src, f.showMenu)
	}

	cfg, err := bootcore.New(st)
	if err != nil {
		return err
	}
	booted, err := app.BootCore(ctx, cfg, src)
	if err != nil {
		return err
	}
	if !booted {
		fmt.Fprintln(cmd.OutOrStdout(), "no core to run")
	}

	return nil
}

func openDriver(f *runFlags, menu []byte) (fpga.Driver, error) {
	switch strings.ToLower(f.platform) {
	case platformDE10:
		return devmem.Open()
	case platformSim:
		drv := simulated.NewDriver(f.simConfig)
		drv.ConfigFor = func(b []byte) string {
			if bytes.Equal(b, menu) {
				return menucore.Name
			}
			return f.simConfig
		}
		return drv, nil
	}
	return nil, usageError{fmt.Errorf("unknown platform: %s", f.platform)}
}

// inputSource is a coreloop.EventSource that must be closed.
type inputSource interface {
	coreloop.EventSource
	Close()
}

type sdlSource struct {
	*sdlinput.Source
}

type termSource struct {
	*terminput.Source
}

func (src termSource) Close() {
	if err := src.Source.Close(); err != nil {
		logger.Log(logger.Allow, "golem", err)
	}
}

// noInput never produces an event. the core runs until the process is
// interrupted.
type noInput struct{}

func (noInput) Poll(dst []userinput.Event) []userinput.Event { return dst }
func (noInput) Close()                                        {}

func openTerm() (inputSource, error) {
	src, err := terminput.NewSource(os.Stdin)
	if err != nil {
		return nil, err
	}

	// the terminal must be restored however the program ends
	ts := termSource{src}
	atexit.Register(ts.Close)

	return ts, nil
}

func openInput(input string) (inputSource, error) {
	switch strings.ToLower(input) {
	case inputSDL:
		src, err := sdlinput.NewSource()
		if err != nil {
			return nil, err
		}
		return sdlSource{src}, nil

	case inputTerm:
		return openTerm()

	case inputNone:
		return noInput{}, nil

	case inputAuto:
		src, err := sdlinput.NewSource()
		if err == nil {
			return sdlSource{src}, nil
		}
		logger.Logf(logger.Allow, "golem", "sdl input: %v", err)

		if terminput.Available(os.Stdin) {
			return openTerm()
		}

		return noInput{}, nil
	}

	return nil, usageError{fmt.Errorf("unknown input source: %s", input)}
}
