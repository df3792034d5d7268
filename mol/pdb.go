/*
 * pdb.go, part of goAPR.
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

package mol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//parsePDBLine parses a valid ATOM or HETATM line of a PDB file and returns
//an Atom plus its coordinates. Occupancy and b-factor columns are optional
//as many light-weight generators leave them out.
func parsePDBLine(line string, lineno int) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return nil, coords, fmt.Errorf("mol: line %d: PDB atom entry too short", lineno)
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	var err error
	atom.Id, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, coords, fmt.Errorf("mol: line %d: bad atom serial: %w", lineno, err)
	}
	atom.Name = strings.TrimSpace(line[12:16])
	//Position 17 is officially an altloc indicator but residue names
	//spill into it often enough that we trim instead of slicing it off.
	atom.Molname = strings.TrimSpace(line[17:21])
	atom.Chain = line[21]
	atom.Molid, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, coords, fmt.Errorf("mol: line %d: bad residue number: %w", lineno, err)
	}
	for i, span := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(line[span[0]:span[1]]), 64)
		if err != nil {
			return nil, coords, fmt.Errorf("mol: line %d: bad coordinate: %w", lineno, err)
		}
	}
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	if atom.Symbol == "" {
		atom.Symbol, _ = SymbolFromName(atom.Name) //a failed guess just leaves it empty
	}
	if atom.Symbol != "" {
		atom.Mass = symbolMass[atom.Symbol]
	}
	return atom, coords, nil
}

//PDBRead reads the atom entries of a PDB from r and returns a Structure.
//Only the first MODEL is kept: restraint setup needs the topology, not a
//trajectory. TER/REMARK/CONECT and other records are skipped.
func PDBRead(r io.Reader) (*Structure, error) {
	atoms := make([]*Atom, 0, 100)
	var flat []float64
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			atom, c, err := parsePDBLine(line, lineno)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, atom)
			flat = append(flat, c[0], c[1], c[2])
		case strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END"):
			//first model only
			goto done
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
done:
	if len(atoms) == 0 {
		return nil, fmt.Errorf("mol: no atom entries found in PDB")
	}
	return newStructureFromFlat(atoms, flat)
}

//PDBFileRead reads the PDB file with the given name.
func PDBFileRead(pdbname string) (*Structure, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	s, err := PDBRead(pdbfile)
	if err != nil {
		return nil, fmt.Errorf("mol: reading %s: %w", pdbname, err)
	}
	return s, nil
}
