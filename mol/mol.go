/*
 * mol.go, part of goAPR.
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

//Package mol provides the minimal molecular structure model needed by the
//restraint machinery: per-atom metadata (names, residues, elements, masses),
//a container keeping atoms together with their coordinates, and PDB reading.
//Selection-mask evaluation against these types lives in the mask package.
package mol

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" plus a few counterions are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Pb": 207.2,
}

//MassFromSymbol returns the tabulated mass for an element symbol, or 0
//if the symbol is not in the table.
func MassFromSymbol(symbol string) float64 {
	return symbolMass[symbol]
}

//SymbolFromName tries to guess a chemical element symbol from a PDB atom
//name. Mostly based on AMBER names, it only deals with common bio-elements
//and monoatomic ions (K+, Cl-, etc). It returns an error if no guess can
//be made.
func SymbolFromName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("mol: can't guess an element from an empty PDB name")
	}
	//ion names carry their formal charge ("K+", "Cl-", "ZN2+"): a trailing
	//sign, possibly preceded by the charge digit. Only that suffix goes;
	//other trailing digits are part of the name proper ("1HB2", "O10").
	if n := len(name); n > 1 && (name[n-1] == '+' || name[n-1] == '-') {
		name = name[:n-1]
		if n := len(name); n > 1 && name[n-1] >= '0' && name[n-1] <= '9' {
			name = name[:n-1]
		}
	}
	symbol := ""
	if len(name) == 4 || name[0] == 'H' { //only Hs have 4-char names in amber.
		symbol = "H"
	} else {
		switch name[0] {
		case 'C':
			switch strings.ToUpper(name) {
			case "CU":
				symbol = "Cu"
			case "CO":
				symbol = "Co"
			case "CL":
				symbol = "Cl"
			case "CA":
				symbol = "C" //Calcium is not considered, as in proteins CA is an alpha carbon.
			default:
				symbol = "C"
			}
		case 'N':
			if strings.ToUpper(name) == "NA" {
				symbol = "Na"
			} else {
				symbol = "N"
			}
		case 'O':
			symbol = "O"
		case 'P':
			if strings.ToUpper(name) == "PB" {
				symbol = "Pb"
			} else {
				symbol = "P"
			}
		case 'S':
			if strings.ToUpper(name) == "SE" {
				symbol = "Se"
			} else {
				symbol = "S"
			}
		case 'K':
			symbol = "K"
		case 'Z':
			if strings.HasPrefix(strings.ToUpper(name), "ZN") {
				symbol = "Zn"
			}
		case 'M':
			if strings.HasPrefix(strings.ToUpper(name), "MG") {
				symbol = "Mg"
			}
		}
	}
	if symbol == "" {
		return symbol, fmt.Errorf("mol: couldn't guess an element from the PDB name %q", name)
	}
	return symbol, nil
}

//Atom contains the metadata for one atom. Coordinates are kept apart, in
//the Structure, as they are not needed for mask resolution.
type Atom struct {
	Name    string //PDB atom name, e.g. "O2" or "Cl-"
	Id      int    //the serial as read from the file, usually 1-based
	Molname string //residue name, e.g. "CB6"
	Molid   int    //residue number as read from the file
	Chain   byte
	Symbol  string
	Mass    float64
	Het     bool //was this a HETATM entry?
}

//Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("mol: attempted to copy a nil atom")
	}
	newat := *A
	return &newat
}

//Structure is an ordered set of atoms plus, optionally, one set of
//Cartesian coordinates (an N x 3 matrix). Restraint setup only reads
//atom metadata; coordinates are carried along for callers that need them.
type Structure struct {
	atoms  []*Atom
	coords *mat.Dense //may be nil
}

//NewStructure builds a Structure from atoms and coordinates. coords may
//be nil; if given, it must have one 3-column row per atom.
func NewStructure(atoms []*Atom, coords *mat.Dense) (*Structure, error) {
	if atoms == nil {
		return nil, fmt.Errorf("mol: supplied a nil atom slice")
	}
	if coords != nil {
		r, c := coords.Dims()
		if r != len(atoms) || c != 3 {
			return nil, fmt.Errorf("mol: inconsistent coordinates: %d atoms but a %dx%d matrix", len(atoms), r, c)
		}
	}
	return &Structure{atoms: atoms, coords: coords}, nil
}

//newStructureFromFlat packs a flat xyzxyz... slice into the coordinate
//matrix. Used by the file readers.
func newStructureFromFlat(atoms []*Atom, flat []float64) (*Structure, error) {
	if len(flat) != 3*len(atoms) {
		return nil, fmt.Errorf("mol: %d atoms but %d coordinate values", len(atoms), len(flat))
	}
	return NewStructure(atoms, mat.NewDense(len(atoms), 3, flat))
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.atoms)
}

//Atom returns the atom at position i (0-based).
//Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= len(S.atoms) {
		panic("mol: requested Atom out of bounds")
	}
	return S.atoms[i]
}

//Coords returns the coordinate matrix, which may be nil.
func (S *Structure) Coords() *mat.Dense {
	return S.coords
}

//SomeAtoms returns the atoms at the given positions, in order.
func (S *Structure) SomeAtoms(list []int) ([]*Atom, error) {
	ret := make([]*Atom, 0, len(list))
	for k, j := range list {
		if j < 0 || j >= len(S.atoms) {
			return nil, fmt.Errorf("mol: atom requested (number %d, value %d) out of range", k, j)
		}
		ret = append(ret, S.atoms[j])
	}
	return ret, nil
}
