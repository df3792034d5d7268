/*
 * errors.go, part of goAPR.
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

import "fmt"

//All errors in this package report caller misconfiguration. They are
//raised at the point of detection and never retried.

//ResolutionError reports a selection mask that matched no atoms in the
//structure.
type ResolutionError struct {
	Mask string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("apr: mask %q matched no atoms", e.Mask)
}

//ConsistencyError reports a cross-restraint mismatch found while building
//the window list: either disagreeing continuous-APR flags or disagreeing
//window counts within one phase. Indices are the positions, in the slice
//given to CreateWindowList, of the restraints that disagree with the
//first one defining the value.
type ConsistencyError struct {
	Field   string //"continuous_apr" or a phase name
	Indices []int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("apr: restraints %v disagree on %s", e.Indices, e.Field)
}

//ConfigurationError reports an incoherent restraint specification, such
//as an increment without a final value, or an unknown custom-value key.
type ConfigurationError struct {
	Context string //typically the phase name
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("apr: bad configuration (%s): %s", e.Context, e.Reason)
}
