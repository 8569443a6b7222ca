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
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/golem-fpga/golem/bitstream"
	"github.com/golem-fpga/golem/catalog"
)

// core files are commonly named with a release date suffix. for example,
// NES_20231012.rbf
var releaseDate = regexp.MustCompile(`^(.+)_(\d{8})$`)

// coreEntry creates a catalog entry from the filename of a core.
func coreEntry(path string) catalog.Entry {
	ld := bitstream.NewLoader(path)
	ent := catalog.Entry{
		Name:         ld.ShortName(),
		Path:         path,
		DownloadedAt: time.Now(),
	}
	if m := releaseDate.FindStringSubmatch(ent.Name); m != nil {
		if t, err := time.Parse("20060102", m[2]); err == nil {
			ent.Name = m[1]
			ent.Version = m[2]
			ent.ReleasedAt = t
		}
	}
	return ent
}

func newCatalogCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "manage the catalog of cores",
	}
	cmd.PersistentFlags().StringVar(&path, "catalog", "", "catalog file (default in the resources directory)")

	open := func(run func(cat *catalog.Session, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.StartSession(path)
			if err != nil {
				return err
			}
			defer cat.EndSession()
			return run(cat, cmd, args)
		}
	}

	var sort string
	list := &cobra.Command{
		Use:   "list",
		Short: "list the cores in the catalog",
		Args:  cobra.NoArgs,
		RunE: open(func(cat *catalog.Session, cmd *cobra.Command, _ []string) error {
			order, err := catalog.ParseSortOrder(sort)
			if err != nil {
				return usageError{err}
			}
			return cat.List(cmd.OutOrStdout(), order)
		}),
	}
	list.Flags().StringVar(&sort, "sort", "name", "sort order: name, desc, played, favorites")

	var name string
	var favorite bool
	add := &cobra.Command{
		Use:   "add CORE...",
		Short: "add core files to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: open(func(cat *catalog.Session, cmd *cobra.Command, args []string) error {
			if name != "" && len(args) > 1 {
				return usageError{fmt.Errorf("--name can only be used with a single core")}
			}
			for _, a := range args {
				if !bitstream.HasCoreExtension(a) {
					return fmt.Errorf("not a core file: %s", a)
				}
				abs, err := filepath.Abs(a)
				if err != nil {
					return err
				}
				if _, err := os.Stat(abs); err != nil {
					return err
				}

				ent := coreEntry(abs)
				if name != "" {
					ent.Name = name
				}
				ent.Favorite = favorite

				key, err := cat.Add(ent)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%03d %s\n", key, ent.Name)
			}
			return nil
		}),
	}
	add.Flags().StringVar(&name, "name", "", "name of the core (default from the filename)")
	add.Flags().BoolVar(&favorite, "favorite", false, "mark the core as a favorite")

	show := &cobra.Command{
		Use:   "show KEY",
		Short: "show a core in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: open(func(cat *catalog.Session, cmd *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{err}
			}
			ent, err := cat.Get(key)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "key:        %d\n", ent.Key)
			fmt.Fprintf(w, "name:       %s\n", ent.Name)
			fmt.Fprintf(w, "version:    %s\n", ent.Version)
			fmt.Fprintf(w, "path:       %s\n", ent.Path)
			fmt.Fprintf(w, "favorite:   %v\n", ent.Favorite)
			if !ent.ReleasedAt.IsZero() {
				fmt.Fprintf(w, "released:   %s\n", ent.ReleasedAt.Format(time.DateOnly))
			}
			if !ent.LastPlayed.IsZero() {
				fmt.Fprintf(w, "played:     %s\n", ent.LastPlayed.Format(time.DateTime))
			}
			return nil
		}),
	}

	var off bool
	fav := &cobra.Command{
		Use:   "favorite KEY",
		Short: "mark a core as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: open(func(cat *catalog.Session, _ *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{err}
			}
			return cat.SetFavorite(key, !off)
		}),
	}
	fav.Flags().BoolVar(&off, "off", false, "remove the favorite mark")

	remove := &cobra.Command{
		Use:   "remove KEY",
		Short: "remove a core from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: open(func(cat *catalog.Session, _ *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{err}
			}
			return cat.Delete(key)
		}),
	}

	cmd.AddCommand(list, add, show, fav, remove)

	return cmd
}

func newUnwrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap IN OUT",
		Short: "extract the raw bitstream from a core container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if !bitstream.IsContainer(data) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not a container. copying as is\n", args[0])
			}
			p, err := bitstream.Unwrap(data)
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], p, 0o644)
		},
	}
}

func newWrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wrap IN OUT",
		Short: "wrap a raw bitstream in a core container",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if bitstream.IsContainer(data) {
				return fmt.Errorf("%s is already a container", args[0])
			}
			return os.WriteFile(args[1], bitstream.Wrap(data), 0o644)
		},
	}
}
