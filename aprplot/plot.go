/*
 * plot.go, part of goAPR.
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

//Package aprplot draws restraint schedules: the force constant and target
//ramps of each phase against the window index. Handy for eyeballing a
//windowing scheme before burning cluster time on it.
package aprplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apr "github.com/hgbind/goapr"
)

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "window"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func lineFor(values []float64, col color.RGBA) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = col
	return line, nil
}

//SchedulePlot writes a PNG with the phase's force-constant and target
//sequences. Returns an error if the phase is not configured for the
//restraint.
func SchedulePlot(r *apr.ResolvedRestraint, phase apr.Phase, plotname string) error {
	pd := r.Phase(phase)
	if pd == nil {
		return fmt.Errorf("aprplot: phase %s is not configured for this restraint", phase)
	}
	p := basicPlot(fmt.Sprintf("%s schedule", phase), "value")
	fcline, err := lineFor(pd.ForceConstants, color.RGBA{R: 196, A: 255})
	if err != nil {
		return err
	}
	tline, err := lineFor(pd.Targets, color.RGBA{B: 196, A: 255})
	if err != nil {
		return err
	}
	p.Add(fcline, tline)
	p.Legend.Add("force constant", fcline)
	p.Legend.Add("target", tline)
	p.X.Min = 0
	p.X.Max = float64(pd.Windows() - 1)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//WindowProfile writes a PNG with one parameter (as named in
//custom-value keys: r2, rk2, ...) across the whole window list, phases
//concatenated. Useful to check phase-boundary continuity.
func WindowProfile(r *apr.ResolvedRestraint, windows []string, param string, plotname string) error {
	pts := make(plotter.XYs, 0, len(windows))
	for i, w := range windows {
		phase, num, err := apr.ParseWindow(w)
		if err != nil {
			return err
		}
		v, err := apr.Values(r, phase, num)
		if err != nil {
			return err
		}
		var y float64
		switch param {
		case "r1":
			y = v.R1
		case "r2":
			y = v.R2
		case "r3":
			y = v.R3
		case "r4":
			y = v.R4
		case "rk2":
			y = v.RK2
		case "rk3":
			y = v.RK3
		default:
			return fmt.Errorf("aprplot: unknown parameter %q", param)
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: y})
	}
	p := basicPlot("window profile", param)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 196, A: 255}
	p.Add(line)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
