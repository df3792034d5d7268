/*
 * amber.go, part of goAPR.
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

//Package amber renders restraint schedules as AMBER NMR restraint input:
//one &rst namelist per restraint per window, collected into the "disang"
//file the sander/pmemd DISANG option points at. Multi-atom masks become
//center-of-mass group restraints (iat entry -1 plus an igr list).
package amber

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apr "github.com/hgbind/goapr"
)

//DisangFileName is the conventional name for the per-window restraint
//definition file.
const DisangFileName = "disang.rest"

func formatIndices(indices []int, offset int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx+offset)
	}
	return strings.Join(parts, ",")
}

//RestraintLine renders one &rst namelist line for the given window
//identifier (e.g. "p003"). Atom indices are emitted 1-based regardless of
//how the restraint was resolved; group masks use iat=-1 with the group
//members in igr1..igr4.
func RestraintLine(r *apr.ResolvedRestraint, window string) (string, error) {
	phase, num, err := apr.ParseWindow(window)
	if err != nil {
		return "", err
	}
	v, err := apr.Values(r, phase, num)
	if err != nil {
		return "", err
	}
	offset := 0
	if !r.AmberIndex { //indices were resolved 0-based
		offset = 1
	}
	var iat, igr []string
	for n, indices := range [][]int{r.Index1, r.Index2, r.Index3, r.Index4} {
		if indices == nil {
			continue
		}
		if len(indices) == 1 {
			iat = append(iat, fmt.Sprintf("%d", indices[0]+offset))
			continue
		}
		iat = append(iat, "-1")
		igr = append(igr, fmt.Sprintf("igr%d= %s,", n+1, formatIndices(indices, offset)))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "&rst iat= %s,", strings.Join(iat, ","))
	fmt.Fprintf(&b, " r1= %.5f, r2= %.5f, r3= %.5f, r4= %.5f, rk2= %.7f, rk3= %.7f,",
		v.R1, v.R2, v.R3, v.R4, v.RK2, v.RK3)
	for _, g := range igr {
		b.WriteString(" ")
		b.WriteString(g)
	}
	b.WriteString(" &end")
	return b.String(), nil
}

//WriteDisang writes the restraint definitions for one window to w.
//Restraints that leave the window's phase unconfigured are skipped, as
//they apply no bias there.
func WriteDisang(w io.Writer, restraints []*apr.ResolvedRestraint, window string) error {
	phase, _, err := apr.ParseWindow(window)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# window %s\n", window); err != nil {
		return err
	}
	for _, r := range restraints {
		if r.Phase(phase) == nil {
			continue
		}
		line, err := RestraintLine(r, window)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

//WriteDisangFile writes the window's disang file into its directory under
//root, as laid out by apr.MakeWindowDirs.
func WriteDisangFile(restraints []*apr.ResolvedRestraint, root, window string) error {
	f, err := os.Create(filepath.Join(root, window, DisangFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteDisang(f, restraints, window); err != nil {
		return err
	}
	return f.Close()
}
