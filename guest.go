/*
 * guest.go, part of goAPR.
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

//GuestRestraints are the six canonical degrees of freedom restraining a
//guest molecule relative to its anchor (dummy/host) atoms: the anchor-
//guest distance, the two polar angles theta and beta, and the torsions
//phi, alpha and gamma. Slots left nil were not found in the collection.
type GuestRestraints struct {
	Distance *ResolvedRestraint
	Theta    *ResolvedRestraint
	Beta     *ResolvedRestraint
	Phi      *ResolvedRestraint
	Alpha    *ResolvedRestraint
	Gamma    *ResolvedRestraint
}

//ExtractGuestRestraints sorts a restraint collection into the guest
//degrees of freedom. A restraint is classified by how many of its masks
//select atoms entirely inside the guest residue versus anchor atoms
//outside it:
//
//	masks  guest  slot
//	2      1      Distance
//	3      2      Theta
//	3      1      Beta
//	4      1      Phi
//	4      2      Alpha
//	4      3      Gamma
//
//Restraints matching no pattern are ignored. When several restraints
//share a pattern the last one written wins, each physical degree of
//freedom occupying a single slot.
func ExtractGuestRestraints(sel AtomSelector, restraints []*ResolvedRestraint, guestResname string) (*GuestRestraints, error) {
	//the selector matches residue names case-insensitively, so the name
	//can be given in either case
	guestMask := ":" + guestResname
	guestAtoms, err := sel.Select(guestMask)
	if err != nil {
		return nil, err
	}
	if len(guestAtoms) == 0 {
		return nil, &ResolutionError{Mask: guestMask}
	}
	inGuest := make(map[int]bool, len(guestAtoms))
	for _, i := range guestAtoms {
		inGuest[i] = true
	}

	out := new(GuestRestraints)
	for _, r := range restraints {
		masks := r.masks()
		guest := 0
		for _, m := range masks {
			atoms, err := sel.Select(m)
			if err != nil {
				return nil, err
			}
			if len(atoms) == 0 {
				return nil, &ResolutionError{Mask: m}
			}
			all := true
			for _, a := range atoms {
				if !inGuest[a] {
					all = false
					break
				}
			}
			if all {
				guest++
			}
		}
		switch {
		case len(masks) == 2 && guest == 1:
			out.Distance = r
		case len(masks) == 3 && guest == 2:
			out.Theta = r
		case len(masks) == 3 && guest == 1:
			out.Beta = r
		case len(masks) == 4 && guest == 1:
			out.Phi = r
		case len(masks) == 4 && guest == 2:
			out.Alpha = r
		case len(masks) == 4 && guest == 3:
			out.Gamma = r
		default:
			log.Debugw("restraint matches no guest degree of freedom", "masks", len(masks), "guest_masks", guest)
		}
	}
	return out, nil
}
