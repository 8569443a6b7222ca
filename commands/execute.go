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

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/rs/xid"

	"github.com/golem-fpga/golem/configstring"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/resources"
	"github.com/golem-fpga/golem/screenshot"
)

// the names of the directories in the resources path
const (
	screenshotDir = "screenshots"
	saveStateDir  = "savestates"
	dumpDir       = "dumps"
)

// the menu item used to reset the core. bit zero of the status bits is the
// reset bit of every core
var resetItem = configstring.Item{
	Kind:      configstring.KindTrigger,
	Label:     "Reset",
	Bits:      configstring.BitRange{Lo: 0, Hi: 0},
	CloseMenu: true,
}

// Execute the command against the application and the core.
func (cmd ShortcutCommand) Execute(app App, c core.Core) Result {
	switch cmd {
	case ShowCoreMenu:
		if app.CoreMenu(c) {
			return Quit()
		}
		return Ok("")

	case QuitCore:
		return Quit()

	case ResetCore:
		if _, err := c.TriggerMenu(resetItem); err != nil {
			return Failed("reset: %v", err)
		}
		return Ok("")

	case TakeScreenshot:
		return takeScreenshot(app, c)

	case SaveState:
		return saveState(app, c)

	case LoadState:
		return loadState(app, c)

	case NextSaveSlot:
		slot := (app.SaveSlot() + 1) % core.NumSaveStateSlots
		app.SetSaveSlot(slot)
		return Ok(fmt.Sprintf("save slot %d", slot+1))

	case DumpMenuTree:
		return dumpMenuTree(c)
	}

	return Failed("unknown command: %s", cmd)
}

func notify(app App, notice notifications.Notice) {
	if err := app.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "commands", "%s: %v", notice, err)
	}
}

func takeScreenshot(app App, c core.Core) Result {
	img, err := c.TakeScreenshot()
	if err != nil {
		return Failed("screenshot: %v", err)
	}

	dir, err := resources.JoinPath(screenshotDir)
	if err != nil {
		return Failed("screenshot: %v", err)
	}

	width := 0
	if s := app.Settings(); s != nil {
		width = s.ScreenshotWidth.Get().(int)
	}

	pth, err := screenshot.Save(dir, c.Name(), img, width)
	if err != nil {
		return Failed("%v", err)
	}

	notify(app, notifications.NotifyScreenshot)
	return Ok(pth)
}

// core names are used as file and directory names
func safeName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(strings.TrimSpace(name))
	if name == "" {
		return "core"
	}
	return name
}

// saveStatePath returns the file for the save state slot of the named core.
func saveStatePath(coreName string, slot int) (string, error) {
	return resources.JoinPath(saveStateDir, safeName(coreName), fmt.Sprintf("slot%d.ss", slot+1))
}

func saveStateSlot(app App, c core.Core) (core.SaveState, int, error) {
	ss := c.SaveStates()
	if len(ss) == 0 {
		return nil, 0, fmt.Errorf("%s does not support save states", c.Name())
	}
	slot := app.SaveSlot()
	if slot < 0 || slot >= len(ss) {
		return nil, 0, fmt.Errorf("no save state slot %d", slot+1)
	}
	return ss[slot], slot, nil
}

func saveState(app App, c core.Core) Result {
	ss, slot, err := saveStateSlot(app, c)
	if err != nil {
		return Failed("save state: %v", err)
	}

	pth, err := saveStatePath(c.Name(), slot)
	if err != nil {
		return Failed("save state: %v", err)
	}

	// the save state is written to a temporary file that replaces the
	// existing file only when the write has succeeded
	f, err := os.CreateTemp(filepath.Dir(pth), "*.tmp")
	if err != nil {
		return Failed("save state: %v", err)
	}

	_, err = ss.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.Name(), pth)
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return Failed("save state: %v", err)
	}

	notify(app, notifications.NotifyStateSaved)
	return Ok(pth)
}

func loadState(app App, c core.Core) Result {
	ss, slot, err := saveStateSlot(app, c)
	if err != nil {
		return Failed("load state: %v", err)
	}

	pth, err := saveStatePath(c.Name(), slot)
	if err != nil {
		return Failed("load state: %v", err)
	}

	f, err := os.Open(pth)
	if err != nil {
		return Failed("load state: %v", err)
	}
	defer f.Close()

	if _, err := ss.ReadFrom(f); err != nil {
		return Failed("load state: %v", err)
	}

	notify(app, notifications.NotifyStateLoaded)
	return Ok(pth)
}

// menuTree is the structure given to memviz.
type menuTree struct {
	Core    string
	Version string
	Status  string
	Time    string
	Pages   map[int][]configstring.Item
}

func dumpMenuTree(c core.Core) Result {
	tree := menuTree{
		Core:    c.Name(),
		Version: c.Version(),
		Status:  c.StatusBits().String(),
		Time:    time.Now().Format(time.RFC3339),
		Pages:   make(map[int][]configstring.Item),
	}
	for _, it := range c.MenuOptions() {
		tree.Pages[it.Page] = append(tree.Pages[it.Page], it)
	}

	name := fmt.Sprintf("%s_%s.dot", safeName(c.Name()), xid.New().String())
	pth, err := resources.JoinPath(dumpDir, name)
	if err != nil {
		return Failed("dump: %v", err)
	}

	f, err := os.Create(pth)
	if err != nil {
		return Failed("dump: %v", err)
	}

	if err := writeMenuTree(f, &tree); err != nil {
		return Failed("dump: %v", err)
	}

	return Ok(pth)
}

// writeMenuTree writes the graph and closes the writer. an error closing the
// writer means the dump is incomplete.
func writeMenuTree(w io.WriteCloser, tree *menuTree) error {
	memviz.Map(w, tree)
	return w.Close()
}
