/*
 * windows.go, part of goAPR.
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
	"os"
	"path/filepath"
	"strconv"
	"time"
)

//WindowName renders a window identifier: the phase letter followed by the
//zero-padded window index, e.g. "a002".
func WindowName(p Phase, i int) string {
	return fmt.Sprintf("%s%03d", p.Letter(), i)
}

//ParseWindow splits a window identifier into its phase and window index.
func ParseWindow(window string) (Phase, int, error) {
	if len(window) < 2 {
		return "", 0, fmt.Errorf("apr: malformed window name %q", window)
	}
	var phase Phase
	switch window[0] {
	case 'a':
		phase = Attach
	case 'p':
		phase = Pull
	case 'r':
		phase = Release
	default:
		return "", 0, fmt.Errorf("apr: window name %q does not start with a phase letter", window)
	}
	n, err := strconv.Atoi(window[1:])
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("apr: malformed window name %q", window)
	}
	return phase, n, nil
}

//phaseWindows finds the common window count of one phase across the
//restraints. Restraints that leave the phase absent are excluded; a
//mismatch among the rest is a ConsistencyError naming the offenders.
func phaseWindows(restraints []*ResolvedRestraint, phase Phase) (int, error) {
	n := 0
	first := -1
	var bad []int
	for i, r := range restraints {
		pd := r.Phase(phase)
		if pd == nil {
			continue
		}
		if first == -1 {
			first = i
			n = pd.Windows()
			continue
		}
		if pd.Windows() != n {
			bad = append(bad, i)
		}
	}
	if bad != nil {
		return 0, &ConsistencyError{Field: string(phase) + " window count", Indices: append([]int{first}, bad...)}
	}
	return n, nil
}

//CreateWindowList merges a collection of resolved restraints into the
//global ordered window list: attach windows, then pull, then release,
//each only when at least one restraint configures the phase. All
//restraints must agree on the continuous-APR flag and, per phase, on the
//window count. With continuous APR the last attach window and the first
//release window are dropped, since they coincide physically with the
//first and last pull windows.
func CreateWindowList(restraints []*ResolvedRestraint) ([]string, error) {
	if len(restraints) == 0 {
		return nil, fmt.Errorf("apr: no restraints to build a window list from")
	}
	continuous := restraints[0].ContinuousAPR
	var bad []int
	for i, r := range restraints[1:] {
		if r.ContinuousAPR != continuous {
			bad = append(bad, i+1)
		}
	}
	if bad != nil {
		return nil, &ConsistencyError{Field: "continuous_apr", Indices: append([]int{0}, bad...)}
	}

	counts := make(map[Phase]int, 3)
	for _, phase := range Phases() {
		n, err := phaseWindows(restraints, phase)
		if err != nil {
			return nil, err
		}
		counts[phase] = n
	}

	windows := make([]string, 0, counts[Attach]+counts[Pull]+counts[Release])
	if n := counts[Attach]; n > 0 {
		last := n
		if continuous {
			last = n - 1
		}
		for i := 0; i < last; i++ {
			windows = append(windows, WindowName(Attach, i))
		}
	}
	for i := 0; i < counts[Pull]; i++ {
		windows = append(windows, WindowName(Pull, i))
	}
	if n := counts[Release]; n > 0 {
		start := 0
		if continuous {
			start = 1
		}
		for i := start; i < n; i++ {
			windows = append(windows, WindowName(Release, i))
		}
	}
	log.Debugw("built window list", "windows", len(windows), "continuous_apr", continuous)
	return windows, nil
}

//MakeWindowDirs creates one directory per window under root. With stash,
//an existing root is first moved aside under a timestamped name instead
//of being mixed into.
func MakeWindowDirs(windows []string, root string, stash bool) error {
	if stash {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			stashed := root + time.Now().Format("_2006.01.02_15.04.05")
			if err := os.Rename(root, stashed); err != nil {
				return err
			}
			log.Debugw("stashed existing window directory", "from", root, "to", stashed)
		}
	}
	for _, w := range windows {
		if err := os.MkdirAll(filepath.Join(root, w), 0o755); err != nil {
			return err
		}
	}
	return nil
}
