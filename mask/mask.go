/*
 * mask.go, part of goAPR.
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

//Package mask evaluates AMBER-style atom selection masks against a
//mol.Structure. The supported subset is what restraint definitions use in
//practice: residue selections by name or number (":BUT", ":1-3"), atom
//selections by name or serial ("@CA", "@12"), name wildcards ("@C*" or
//"@C="), and comma-joined compound selections where a new ":" opens a new
//residue context (":1@O,O1,:BUT@H1").
//
//Matching atoms are returned as 0-based positions in the structure, in
//ascending order and deduplicated. A syntactically valid mask that matches
//nothing yields an empty (non-nil) result and no error; the caller decides
//whether that is fatal.
package mask

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hgbind/goapr/mol"
)

//item is one residue or atom pattern: a name (possibly with a trailing
//wildcard) or an inclusive numeric range.
type item struct {
	name     string
	wild     bool //name is a prefix pattern ("C*" or "C=")
	lo, hi   int
	numeric  bool
	matchAll bool //the pattern was a lone "*" or "="
}

//group is one residue context and its atom patterns. Nil slices mean
//"no restriction on that axis".
type group struct {
	residues []item
	atoms    []item
}

func parseItem(tok string) (item, error) {
	if tok == "*" || tok == "=" {
		return item{matchAll: true}, nil
	}
	if strings.HasSuffix(tok, "*") || strings.HasSuffix(tok, "=") {
		name := tok[:len(tok)-1]
		if name == "" {
			return item{matchAll: true}, nil
		}
		return item{name: name, wild: true}, nil
	}
	//numeric item or range
	if c := tok[0]; c >= '0' && c <= '9' {
		lo, hi, found := strings.Cut(tok, "-")
		a, err := strconv.Atoi(lo)
		if err != nil {
			return item{}, fmt.Errorf("mask: bad numeric selection %q", tok)
		}
		b := a
		if found {
			b, err = strconv.Atoi(hi)
			if err != nil || b < a {
				return item{}, fmt.Errorf("mask: bad numeric range %q", tok)
			}
		}
		return item{lo: a, hi: b, numeric: true}, nil
	}
	return item{name: tok}, nil
}

//Residue and atom names match case-insensitively, as AMBER's own mask
//parser does.
func (it item) matchName(name string) bool {
	if it.matchAll {
		return true
	}
	if it.numeric {
		return false
	}
	if it.wild {
		return len(name) >= len(it.name) && strings.EqualFold(name[:len(it.name)], it.name)
	}
	return strings.EqualFold(name, it.name)
}

func (it item) matchNumber(n int) bool {
	if it.matchAll {
		return true
	}
	if !it.numeric {
		return false
	}
	return n >= it.lo && n <= it.hi
}

//parse splits a mask into groups. Tokens are comma separated; a token
//starting with ':' opens a new group, '@' switches the current group from
//residue patterns to atom patterns, and bare tokens extend whichever list
//is current.
func parse(mask string) ([]group, error) {
	mask = strings.TrimSpace(mask)
	if mask == "" {
		return nil, fmt.Errorf("mask: empty selection")
	}
	var groups []group
	var cur *group
	inAtoms := false
	appendItem := func(tok string) error {
		if tok == "" {
			return nil
		}
		it, err := parseItem(tok)
		if err != nil {
			return err
		}
		if inAtoms {
			cur.atoms = append(cur.atoms, it)
		} else {
			cur.residues = append(cur.residues, it)
		}
		return nil
	}
	for _, tok := range strings.Split(mask, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, ":") {
			groups = append(groups, group{})
			cur = &groups[len(groups)-1]
			inAtoms = false
			tok = tok[1:]
		} else if strings.HasPrefix(tok, "@") {
			if cur == nil { //mask starts with '@': any residue
				groups = append(groups, group{})
				cur = &groups[len(groups)-1]
			}
			inAtoms = true
			tok = tok[1:]
		} else if cur == nil {
			return nil, fmt.Errorf("mask: selection must start with ':' or '@', got %q", mask)
		}
		//a residue token may carry the '@' that opens the atom list,
		//as in ":BUT@C3" or ":1-3,5@CA".
		if res, at, found := strings.Cut(tok, "@"); found && !inAtoms {
			if err := appendItem(res); err != nil {
				return nil, err
			}
			inAtoms = true
			if err := appendItem(at); err != nil {
				return nil, err
			}
			continue
		}
		if err := appendItem(tok); err != nil {
			return nil, err
		}
	}
	for i, g := range groups {
		if g.residues == nil && g.atoms == nil {
			return nil, fmt.Errorf("mask: group %d of %q selects nothing", i+1, mask)
		}
	}
	return groups, nil
}

func (g group) matches(pos int, a *mol.Atom) bool {
	if g.residues != nil {
		ok := false
		for _, it := range g.residues {
			if it.matchName(a.Molname) || it.matchNumber(a.Molid) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if g.atoms != nil {
		for _, it := range g.atoms {
			//atom serials in masks are 1-based positions
			if it.matchName(a.Name) || it.matchNumber(pos+1) {
				return true
			}
		}
		return false
	}
	return true
}

//Selector evaluates masks against one structure. It satisfies the
//AtomSelector contract of the apr package.
type Selector struct {
	str *mol.Structure
}

//NewSelector returns a Selector bound to s.
func NewSelector(s *mol.Structure) *Selector {
	if s == nil {
		panic("mask: nil structure given to NewSelector")
	}
	return &Selector{str: s}
}

//Select returns the 0-based positions of the atoms matched by mask, in
//ascending order. A valid mask matching no atoms returns an empty slice.
func (S *Selector) Select(mask string) ([]int, error) {
	groups, err := parse(mask)
	if err != nil {
		return nil, err
	}
	selected := make([]int, 0, 8)
	for i := 0; i < S.str.Len(); i++ {
		a := S.str.Atom(i)
		for _, g := range groups {
			if g.matches(i, a) {
				selected = append(selected, i)
				break
			}
		}
	}
	return selected, nil
}

//Select is a convenience wrapper for one-shot evaluations.
func Select(s *mol.Structure, mask string) ([]int, error) {
	return NewSelector(s).Select(mask)
}
