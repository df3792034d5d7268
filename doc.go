/*
 * doc.go, part of goAPR.
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

//Package apr generates the per-window control schedule for staged
//free-energy restraint simulations (attach-pull-release).
//
//A Restraint describes one restrained geometric coordinate - a distance,
//angle or torsion between groups of atoms - and, per phase, how its force
//constant and target value evolve across simulation windows. Initialize
//resolves the selection masks against a structure and computes the
//schedules, returning an immutable ResolvedRestraint. CreateWindowList
//merges a set of resolved restraints into one validated, ordered list of
//window names, Values and BiasPotentialType map a (restraint, phase,
//window) triple to the six flat-bottom potential parameters and their
//symbolic shape, and ExtractGuestRestraints sorts restraints into the six
//canonical guest degrees of freedom.
//
//Structure loading and mask evaluation are external: anything satisfying
//the AtomSelector interface works, with the mask package providing the
//AMBER-syntax implementation used in practice.
package apr
