/*
 * config.go, part of goAPR.
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

	"github.com/spf13/viper"

	apr "github.com/hgbind/goapr"
	"github.com/hgbind/goapr/mask"
	"github.com/hgbind/goapr/mol"
)

//rampConfig mirrors apr.RampSide for YAML decoding. Pointer fields keep
//"not given" distinguishable from an explicit zero.
type rampConfig struct {
	Target            *float64  `mapstructure:"target"`
	NumWindows        *int      `mapstructure:"num_windows"`
	FCInitial         *float64  `mapstructure:"fc_initial"`
	FCFinal           *float64  `mapstructure:"fc_final"`
	FCIncrement       *float64  `mapstructure:"fc_increment"`
	FractionList      []float64 `mapstructure:"fraction_list"`
	FractionIncrement *float64  `mapstructure:"fraction_increment"`
	FCList            []float64 `mapstructure:"fc_list"`
}

type pullConfig struct {
	FC                *float64  `mapstructure:"fc"`
	NumWindows        *int      `mapstructure:"num_windows"`
	TargetInitial     *float64  `mapstructure:"target_initial"`
	TargetFinal       *float64  `mapstructure:"target_final"`
	TargetIncrement   *float64  `mapstructure:"target_increment"`
	FractionList      []float64 `mapstructure:"fraction_list"`
	FractionIncrement *float64  `mapstructure:"fraction_increment"`
	TargetList        []float64 `mapstructure:"target_list"`
}

type restraintConfig struct {
	Mask1                 string             `mapstructure:"mask1"`
	Mask2                 string             `mapstructure:"mask2"`
	Mask3                 string             `mapstructure:"mask3"`
	Mask4                 string             `mapstructure:"mask4"`
	AmberIndex            bool               `mapstructure:"amber_index"`
	ContinuousAPR         bool               `mapstructure:"continuous_apr"`
	AutoAPR               bool               `mapstructure:"auto_apr"`
	Attach                *rampConfig        `mapstructure:"attach"`
	Pull                  *pullConfig        `mapstructure:"pull"`
	Release               *rampConfig        `mapstructure:"release"`
	CustomRestraintValues map[string]float64 `mapstructure:"custom_restraint_values"`
}

type config struct {
	Topology      string            `mapstructure:"topology"`
	Guest         string            `mapstructure:"guest"`
	WindowsDir    string            `mapstructure:"windows_dir"`
	StashExisting bool              `mapstructure:"stash_existing"`
	Restraints    []restraintConfig `mapstructure:"restraints"`
}

func loadConfig(path string) (*config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("windows_dir", "windows")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := new(config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if cfg.Topology == "" {
		return nil, fmt.Errorf("config %s: topology is required", path)
	}
	if len(cfg.Restraints) == 0 {
		return nil, fmt.Errorf("config %s: no restraints defined", path)
	}
	return cfg, nil
}

func (rc *rampConfig) toSide() apr.RampSide {
	if rc == nil {
		return apr.RampSide{}
	}
	return apr.RampSide{
		Target:            rc.Target,
		NumWindows:        rc.NumWindows,
		FCInitial:         rc.FCInitial,
		FCFinal:           rc.FCFinal,
		FCIncrement:       rc.FCIncrement,
		FractionList:      rc.FractionList,
		FractionIncrement: rc.FractionIncrement,
		FCList:            rc.FCList,
	}
}

func (pc *pullConfig) toSide() apr.PullSide {
	if pc == nil {
		return apr.PullSide{}
	}
	return apr.PullSide{
		FC:                pc.FC,
		NumWindows:        pc.NumWindows,
		TargetInitial:     pc.TargetInitial,
		TargetFinal:       pc.TargetFinal,
		TargetIncrement:   pc.TargetIncrement,
		FractionList:      pc.FractionList,
		FractionIncrement: pc.FractionIncrement,
		TargetList:        pc.TargetList,
	}
}

func (rc *restraintConfig) toRestraint() apr.Restraint {
	return apr.Restraint{
		Mask1:                 rc.Mask1,
		Mask2:                 rc.Mask2,
		Mask3:                 rc.Mask3,
		Mask4:                 rc.Mask4,
		AmberIndex:            rc.AmberIndex,
		ContinuousAPR:         rc.ContinuousAPR,
		AutoAPR:               rc.AutoAPR,
		Attach:                rc.Attach.toSide(),
		Pull:                  rc.Pull.toSide(),
		Release:               rc.Release.toSide(),
		CustomRestraintValues: rc.CustomRestraintValues,
	}
}

//build loads the topology and initializes every configured restraint.
func (c *config) build() (*mask.Selector, []*apr.ResolvedRestraint, error) {
	structure, err := mol.PDBFileRead(c.Topology)
	if err != nil {
		return nil, nil, err
	}
	sel := mask.NewSelector(structure)
	restraints := make([]*apr.ResolvedRestraint, 0, len(c.Restraints))
	for i, rc := range c.Restraints {
		resolved, err := apr.Initialize(rc.toRestraint(), sel)
		if err != nil {
			return nil, nil, fmt.Errorf("restraint %d: %w", i, err)
		}
		restraints = append(restraints, resolved)
	}
	return sel, restraints, nil
}
