/*
 * values.go, part of goAPR.
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

package apr

import (
	"fmt"
	"strings"
)

//RestraintValues are the six parameters of an AMBER-style flat-bottom
//potential: flat between R2 and R3, parabolic with force constants RK2
//and RK3 on either side, linear beyond R1 and R4.
type RestraintValues struct {
	R1  float64
	R2  float64
	R3  float64
	R4  float64
	RK2 float64
	RK3 float64
}

//effectively unbounded outer wall edge
const unboundedEdge = 999.0

//Values extracts the potential parameters for one window of one phase.
//Defaults are a symmetric harmonic well at the window's target with the
//window's force constant; any key present in CustomRestraintValues
//overrides its parameter identically across all phases and windows.
func Values(r *ResolvedRestraint, phase Phase, window int) (RestraintValues, error) {
	var v RestraintValues
	pd := r.Phase(phase)
	if pd == nil {
		return v, fmt.Errorf("apr: phase %s is not configured for this restraint", phase)
	}
	if window < 0 || window >= pd.Windows() {
		return v, fmt.Errorf("apr: window %d out of range for phase %s (%d windows)", window, phase, pd.Windows())
	}
	v = RestraintValues{
		R1:  0.0,
		R2:  pd.Targets[window],
		R3:  pd.Targets[window],
		R4:  unboundedEdge,
		RK2: pd.ForceConstants[window],
		RK3: pd.ForceConstants[window],
	}
	for key, override := range r.CustomRestraintValues {
		switch strings.ToLower(key) {
		case "r1":
			v.R1 = override
		case "r2":
			v.R2 = override
		case "r3":
			v.R3 = override
		case "r4":
			v.R4 = override
		case "rk2":
			v.RK2 = override
		case "rk3":
			v.RK3 = override
		default:
			return v, &ConfigurationError{Context: "custom_restraint_values", Reason: fmt.Sprintf("unknown parameter %q", key)}
		}
	}
	return v, nil
}

//BiasPotential is the symbolic shape of a restraint potential.
type BiasPotential string

const (
	//HarmonicRestraint is a symmetric point target (including the
	//degenerate fully-zero case).
	HarmonicRestraint BiasPotential = "restraint"
	//UpperWalls bounds the coordinate from above only.
	UpperWalls BiasPotential = "upper_walls"
	//LowerWalls bounds the coordinate from below only.
	LowerWalls BiasPotential = "lower_walls"
)

//BiasType classifies the potential shape. A one-sided zero force constant
//identifies a wall directly; otherwise a symmetric bound range is an
//ordinary restraint and an asymmetric one is a wall on the wider side.
//The first matching rule wins.
func (v RestraintValues) BiasType() BiasPotential {
	switch {
	case v.RK2 == 0 && v.RK3 != 0:
		return UpperWalls
	case v.RK3 == 0 && v.RK2 != 0:
		return LowerWalls
	case v.R2 == v.R3:
		return HarmonicRestraint
	case v.R2 < v.R3:
		return UpperWalls
	default:
		return LowerWalls
	}
}

//BiasPotentialType classifies the potential applied in one window of one
//phase, custom overrides included.
func BiasPotentialType(r *ResolvedRestraint, phase Phase, window int) (BiasPotential, error) {
	v, err := Values(r, phase, window)
	if err != nil {
		return "", err
	}
	return v.BiasType(), nil
}
