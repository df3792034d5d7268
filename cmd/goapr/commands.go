/*
 * commands.go, part of goAPR.
 *
 * Copyright 2023 The goAPR developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	apr "github.com/hgbind/goapr"
	"github.com/hgbind/goapr/amber"
	"github.com/hgbind/goapr/aprplot"
)

func newWindowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "print the merged window list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			_, restraints, err := cfg.build()
			if err != nil {
				return err
			}
			windows, err := apr.CreateWindowList(restraints)
			if err != nil {
				return err
			}
			for _, w := range windows {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "create window directories and write AMBER restraint files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			_, restraints, err := cfg.build()
			if err != nil {
				return err
			}
			windows, err := apr.CreateWindowList(restraints)
			if err != nil {
				return err
			}
			if err := apr.MakeWindowDirs(windows, cfg.WindowsDir, cfg.StashExisting); err != nil {
				return err
			}
			for _, w := range windows {
				if err := amber.WriteDisangFile(restraints, cfg.WindowsDir, w); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d windows under %s\n", len(windows), cfg.WindowsDir)
			return nil
		},
	}
}

func newPlotCmd() *cobra.Command {
	var outdir string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the schedule of every restraint and phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			_, restraints, err := cfg.build()
			if err != nil {
				return err
			}
			for i, r := range restraints {
				for _, phase := range apr.Phases() {
					if r.Phase(phase) == nil {
						continue
					}
					name := filepath.Join(outdir, fmt.Sprintf("restraint%d_%s", i, phase))
					if err := aprplot.SchedulePlot(r, phase, name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outdir, "outdir", "o", ".", "directory for the PNG files")
	return cmd
}

func newDOFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dof",
		Short: "classify restraints into guest degrees of freedom",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cfg.Guest == "" {
				return fmt.Errorf("the dof command needs `guest` set in the config")
			}
			sel, restraints, err := cfg.build()
			if err != nil {
				return err
			}
			guest, err := apr.ExtractGuestRestraints(sel, restraints, cfg.Guest)
			if err != nil {
				return err
			}
			show := func(name string, r *apr.ResolvedRestraint) {
				if r == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s -\n", name)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s %s %s %s\n", name, r.Mask1, r.Mask2, r.Mask3, r.Mask4)
			}
			show("distance", guest.Distance)
			show("theta", guest.Theta)
			show("beta", guest.Beta)
			show("phi", guest.Phi)
			show("alpha", guest.Alpha)
			show("gamma", guest.Gamma)
			return nil
		},
	}
}
