/*
 * mask_test.go, part of goAPR.
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

package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgbind/goapr/mol"
)

func testSelector(t *testing.T) *Selector {
	t.Helper()
	type spec struct {
		name  string
		res   string
		resid int
	}
	specs := []spec{
		{"O", "CB6", 1}, {"O2", "CB6", 1}, {"O4", "CB6", 1}, {"O6", "CB6", 1},
		{"O8", "CB6", 1}, {"O10", "CB6", 1}, {"N", "CB6", 1},
		{"C", "BUT", 2}, {"C1", "BUT", 2}, {"C2", "BUT", 2}, {"C3", "BUT", 2}, {"H1", "BUT", 2},
		{"DUM", "DM1", 3},
	}
	atoms := make([]*mol.Atom, len(specs))
	for i, sp := range specs {
		atoms[i] = &mol.Atom{Name: sp.name, Id: i + 1, Molname: sp.res, Molid: sp.resid, Chain: 'A'}
	}
	s, err := mol.NewStructure(atoms, nil)
	require.NoError(t, err)
	return NewSelector(s)
}

func TestSelect(t *testing.T) {
	sel := testSelector(t)
	cases := []struct {
		mask string
		want []int
	}{
		{":BUT", []int{7, 8, 9, 10, 11}},
		{":2", []int{7, 8, 9, 10, 11}},
		{":DM1", []int{12}},
		{":1-2", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{":BUT@C", []int{7}},
		{":BUT@C3", []int{10}},
		{":BUT@C*", []int{7, 8, 9, 10}},
		{":BUT@C=", []int{7, 8, 9, 10}},
		{":CB6@O", []int{0}},
		{":CB6@O,O2,O4,O6,O8,O10", []int{0, 1, 2, 3, 4, 5}},
		{"@N", []int{6}},
		{"@8", []int{7}}, //atom serials are 1-based
		{"@1-3", []int{0, 1, 2}},
		{":1@O,O2,:BUT@H1", []int{0, 1, 11}},
		{":*", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{":CB6,:DM1", []int{0, 1, 2, 3, 4, 5, 6, 12}},
		//names match regardless of case, as in AMBER
		{":but", []int{7, 8, 9, 10, 11}},
		{":cb6@o10", []int{5}},
		{":BUT@c*", []int{7, 8, 9, 10}},
	}
	for _, c := range cases {
		t.Run(c.mask, func(t *testing.T) {
			got, err := sel.Select(c.mask)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSelectNoMatch(t *testing.T) {
	sel := testSelector(t)
	for _, mask := range []string{":XYZ", ":BUT@ZZ", ":99", "@Q*"} {
		got, err := sel.Select(mask)
		require.NoError(t, err, "mask %q", mask)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSelectErrors(t *testing.T) {
	sel := testSelector(t)
	for _, mask := range []string{"", "  ", "BUT", ":3-1", ":", "@"} {
		_, err := sel.Select(mask)
		assert.Error(t, err, "mask %q", mask)
	}
}

func TestSelectOneShot(t *testing.T) {
	sel := testSelector(t)
	got, err := Select(sel.str, ":BUT@H1")
	require.NoError(t, err)
	assert.Equal(t, []int{11}, got)
}
