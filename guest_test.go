/*
 * guest_test.go, part of goAPR.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgbind/goapr/mask"
	"github.com/hgbind/goapr/mol"
)

func guestRestraint(t *testing.T, masks ...string) *ResolvedRestraint {
	t.Helper()
	sel := hostGuestSelector(t)
	r := Restraint{Mask1: masks[0], Mask2: masks[1]}
	if len(masks) > 2 {
		r.Mask3 = masks[2]
	}
	if len(masks) > 3 {
		r.Mask4 = masks[3]
	}
	r.Attach = RampSide{Target: Float(0.0), NumWindows: Int(2), FCFinal: Float(5.0)}
	res, err := Initialize(r, sel)
	require.NoError(t, err)
	return res
}

func TestExtractGuestRestraints(t *testing.T) {
	sel := hostGuestSelector(t)
	distance := guestRestraint(t, ":DM1", ":BUT@C")
	theta := guestRestraint(t, ":DM1", ":BUT@C", ":BUT@C1")
	beta := guestRestraint(t, ":DM1", ":DM2", ":BUT@C")
	phi := guestRestraint(t, ":DM1", ":DM2", ":DM3", ":BUT@C")
	alpha := guestRestraint(t, ":DM1", ":DM2", ":BUT@C", ":BUT@C1")
	gamma := guestRestraint(t, ":DM1", ":BUT@C", ":BUT@C1", ":BUT@C2")
	hostOnly := guestRestraint(t, ":CB6@O", ":CB6@N")

	//slots fill incrementally as matching restraints appear
	g, err := ExtractGuestRestraints(sel, []*ResolvedRestraint{distance, theta}, "but")
	require.NoError(t, err)
	assert.Same(t, distance, g.Distance)
	assert.Same(t, theta, g.Theta)
	assert.Nil(t, g.Beta)
	assert.Nil(t, g.Phi)
	assert.Nil(t, g.Alpha)
	assert.Nil(t, g.Gamma)

	all := []*ResolvedRestraint{distance, theta, beta, phi, alpha, gamma, hostOnly}
	g, err = ExtractGuestRestraints(sel, all, "BUT")
	require.NoError(t, err)
	assert.Same(t, distance, g.Distance)
	assert.Same(t, theta, g.Theta)
	assert.Same(t, beta, g.Beta)
	assert.Same(t, phi, g.Phi)
	assert.Same(t, alpha, g.Alpha)
	assert.Same(t, gamma, g.Gamma)
}

func TestExtractGuestRestraintsLastWins(t *testing.T) {
	sel := hostGuestSelector(t)
	first := guestRestraint(t, ":DM1", ":BUT@C")
	second := guestRestraint(t, ":DM2", ":BUT@C1")

	g, err := ExtractGuestRestraints(sel, []*ResolvedRestraint{first, second}, "BUT")
	require.NoError(t, err)
	assert.Same(t, second, g.Distance)
}

func TestExtractGuestRestraintsResnameCase(t *testing.T) {
	//structure residue names need not be upper-case, nor must the guest
	//name match their case
	atoms := []*mol.Atom{
		{Name: "DUM", Molname: "Dm1", Molid: 1},
		{Name: "C1", Molname: "But", Molid: 2},
		{Name: "C2", Molname: "But", Molid: 2},
	}
	s, err := mol.NewStructure(atoms, nil)
	require.NoError(t, err)
	sel := mask.NewSelector(s)

	r := Restraint{Mask1: ":DM1", Mask2: ":BUT@C1"}
	r.Attach = RampSide{Target: Float(0.0), NumWindows: Int(2), FCFinal: Float(5.0)}
	res, err := Initialize(r, sel)
	require.NoError(t, err)

	g, err := ExtractGuestRestraints(sel, []*ResolvedRestraint{res}, "BUT")
	require.NoError(t, err)
	assert.Same(t, res, g.Distance)

	g, err = ExtractGuestRestraints(sel, []*ResolvedRestraint{res}, "but")
	require.NoError(t, err)
	assert.Same(t, res, g.Distance)
}

func TestExtractGuestRestraintsUnknownResidue(t *testing.T) {
	sel := hostGuestSelector(t)
	distance := guestRestraint(t, ":DM1", ":BUT@C")

	var resErr *ResolutionError
	_, err := ExtractGuestRestraints(sel, []*ResolvedRestraint{distance}, "XYZ")
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, ":XYZ", resErr.Mask)
}
