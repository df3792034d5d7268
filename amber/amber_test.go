/*
 * amber_test.go, part of goAPR.
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

package amber

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apr "github.com/hgbind/goapr"
	"github.com/hgbind/goapr/mask"
	"github.com/hgbind/goapr/mol"
)

func testSelector(t *testing.T) *mask.Selector {
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
	return mask.NewSelector(s)
}

func attachDistance(t *testing.T, amberIndex bool) *apr.ResolvedRestraint {
	t.Helper()
	r := apr.Restraint{Mask1: ":DM1", Mask2: ":BUT@C3", AmberIndex: amberIndex}
	r.Attach = apr.RampSide{Target: apr.Float(6.0), NumWindows: apr.Int(2), FCInitial: apr.Float(0.0), FCFinal: apr.Float(5.0)}
	res, err := apr.Initialize(r, testSelector(t))
	require.NoError(t, err)
	return res
}

func TestRestraintLine(t *testing.T) {
	res := attachDistance(t, true)
	line, err := RestraintLine(res, "a001")
	require.NoError(t, err)
	assert.Equal(t,
		"&rst iat= 13,11, r1= 0.00000, r2= 6.00000, r3= 6.00000, r4= 999.00000, rk2= 5.0000000, rk3= 5.0000000, &end",
		line)

	//0-based resolution must still emit 1-based AMBER serials
	zero := attachDistance(t, false)
	line0, err := RestraintLine(zero, "a001")
	require.NoError(t, err)
	assert.Equal(t, line, line0)

	_, err = RestraintLine(res, "p000")
	assert.Error(t, err) //pull not configured
	_, err = RestraintLine(res, "q001")
	assert.Error(t, err)
}

func TestRestraintLineGroup(t *testing.T) {
	r := apr.Restraint{Mask1: ":CB6@O,O2,O4,O6,O8,O10", Mask2: ":BUT@C3", AmberIndex: true}
	r.Attach = apr.RampSide{Target: apr.Float(3.0), NumWindows: apr.Int(4), FCInitial: apr.Float(0.0), FCFinal: apr.Float(3.0)}
	res, err := apr.Initialize(r, testSelector(t))
	require.NoError(t, err)

	line, err := RestraintLine(res, "a002")
	require.NoError(t, err)
	assert.Equal(t,
		"&rst iat= -1,11, r1= 0.00000, r2= 3.00000, r3= 3.00000, r4= 999.00000, rk2= 2.0000000, rk3= 2.0000000, igr1= 1,2,3,4,5,6, &end",
		line)
}

func TestWriteDisang(t *testing.T) {
	attach := attachDistance(t, true)

	pull := apr.Restraint{Mask1: ":CB6@N", Mask2: ":BUT@C3", AmberIndex: true}
	pull.Pull = apr.PullSide{FC: apr.Float(5.0), NumWindows: apr.Int(2), TargetInitial: apr.Float(6.0), TargetFinal: apr.Float(10.0)}
	pres, err := apr.Initialize(pull, testSelector(t))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteDisang(&b, []*apr.ResolvedRestraint{attach, pres}, "a000"))
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2) //header plus the one restraint active in attach
	assert.Equal(t, "# window a000", lines[0])
	assert.Contains(t, lines[1], "iat= 13,11,")
	assert.Contains(t, lines[1], "rk2= 0.0000000,")

	b.Reset()
	require.NoError(t, WriteDisang(&b, []*apr.ResolvedRestraint{attach, pres}, "p001"))
	lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "iat= 7,11,")
	assert.Contains(t, lines[1], "r2= 10.00000,")

	assert.Error(t, WriteDisang(&b, nil, "z000"))
}

func TestWriteDisangFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a001"), 0o755))

	attach := attachDistance(t, true)
	require.NoError(t, WriteDisangFile([]*apr.ResolvedRestraint{attach}, root, "a001"))

	data, err := os.ReadFile(filepath.Join(root, "a001", DisangFileName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# window a001\n&rst iat= 13,11,"))

	//missing window directory
	assert.Error(t, WriteDisangFile([]*apr.ResolvedRestraint{attach}, root, "a009"))
}
