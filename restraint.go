/*
 * restraint.go, part of goAPR.
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

//Phase names one of the three stages of an APR calculation.
type Phase string

const (
	Attach  Phase = "attach"
	Pull    Phase = "pull"
	Release Phase = "release"
)

//Phases returns the three phases in their canonical order.
func Phases() []Phase {
	return []Phase{Attach, Pull, Release}
}

//Letter returns the single-character prefix used in window names.
func (p Phase) Letter() string {
	switch p {
	case Attach:
		return "a"
	case Pull:
		return "p"
	case Release:
		return "r"
	}
	return "?"
}

//AtomSelector resolves a selection mask into the 0-based positions of the
//matching atoms, in ascending order. Implementations are bound to one
//structure; the mask package provides the AMBER-syntax one. A valid mask
//that matches nothing should return an empty slice rather than an error,
//leaving the decision to the caller.
type AtomSelector interface {
	Select(mask string) ([]int, error)
}

//Float and Int give addressable copies for the optional schedule fields.
//Zero is a meaningful force constant and a meaningful target, so presence
//has to be explicit: a nil field is "not specified".

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

//RampSide is the schedule specification for a phase whose force constant
//varies while the target stays fixed (attach and release). Exactly one of
//the five specification methods should be populated; if several are, the
//first match in the order NumWindows, FCIncrement, FractionList,
//FractionIncrement, FCList wins.
type RampSide struct {
	Target            *float64
	NumWindows        *int
	FCInitial         *float64
	FCFinal           *float64
	FCIncrement       *float64
	FractionList      []float64
	FractionIncrement *float64
	FCList            []float64
}

//PullSide is the schedule specification for the pull phase, where the
//roles swap: the force constant stays fixed at FC while the target varies
//by one of the same five method shapes.
type PullSide struct {
	FC                *float64
	NumWindows        *int
	TargetInitial     *float64
	TargetFinal       *float64
	TargetIncrement   *float64
	FractionList      []float64
	FractionIncrement *float64
	TargetList        []float64
}

//Restraint is the user-facing specification of one restrained coordinate.
//Two set masks make it a distance, three an angle, four a torsion. The
//zero value is an empty restraint to be filled field by field; Initialize
//turns it into a ResolvedRestraint without modifying it.
type Restraint struct {
	Mask1 string
	Mask2 string
	Mask3 string
	Mask4 string

	//AmberIndex selects 1-based atom indices in the resolved index
	//slices, as AMBER input expects. Otherwise indices are 0-based.
	AmberIndex bool

	//ContinuousAPR shares the attach/pull and pull/release boundary
	//windows instead of duplicating them in the window list.
	ContinuousAPR bool

	//AutoAPR derives unset pull and release settings so the
	//thermodynamic cycle closes: pull's force constant and initial
	//target come from attach, release mirrors attach's ramp against
	//pull's final target.
	AutoAPR bool

	Attach  RampSide
	Pull    PullSide
	Release RampSide

	//CustomRestraintValues overrides individual potential parameters
	//(keys r1, r2, r3, r4, rk2, rk3) for every window of every phase.
	CustomRestraintValues map[string]float64
}

//masks returns the set masks, in order.
func (r *Restraint) masks() []string {
	all := []string{r.Mask1, r.Mask2, r.Mask3, r.Mask4}
	set := make([]string, 0, 4)
	for _, m := range all {
		if m != "" {
			set = append(set, m)
		}
	}
	return set
}

//PhaseData holds one phase's computed schedule: force constant and target
//per window, both of the same length.
type PhaseData struct {
	ForceConstants []float64
	Targets        []float64
}

//Windows returns the number of windows in the phase.
func (p *PhaseData) Windows() int {
	if p == nil {
		return 0
	}
	return len(p.ForceConstants)
}

//ResolvedRestraint is the immutable result of initializing a Restraint
//against a structure: the input specification plus the resolved atom
//indices and the computed per-phase schedules. It is safe for concurrent
//reads.
type ResolvedRestraint struct {
	Restraint

	//One index slice per set mask; nil for unset masks. A mask may
	//resolve to several atoms (a center-of-mass group).
	Index1 []int
	Index2 []int
	Index3 []int
	Index4 []int

	attach  *PhaseData
	pull    *PhaseData
	release *PhaseData
}

//Phase returns the schedule for the named phase, or nil if the phase was
//not configured.
func (r *ResolvedRestraint) Phase(p Phase) *PhaseData {
	switch p {
	case Attach:
		return r.attach
	case Pull:
		return r.pull
	case Release:
		return r.release
	}
	return nil
}

//applyAutoAPR fills, on a copy of the specification, the fields that
//auto-APR derives. Each field is only derived when left unset, and
//nothing is derived unless the pull phase is configured.
func applyAutoAPR(r *Restraint) {
	if !r.AutoAPR || pullMethod(&r.Pull) == methodNone {
		return
	}
	if r.Pull.FC == nil {
		r.Pull.FC = r.Attach.FCFinal
	}
	if r.Pull.TargetInitial == nil {
		r.Pull.TargetInitial = r.Attach.Target
	}
	if r.Release.Target == nil {
		r.Release.Target = r.Pull.TargetFinal
	}
	//the release ramp mirrors the attach ramp
	if r.Release.NumWindows == nil {
		r.Release.NumWindows = r.Attach.NumWindows
	}
	if r.Release.FCInitial == nil {
		r.Release.FCInitial = r.Attach.FCInitial
	}
	if r.Release.FCFinal == nil {
		r.Release.FCFinal = r.Attach.FCFinal
	}
	if r.Release.FCIncrement == nil {
		r.Release.FCIncrement = r.Attach.FCIncrement
	}
	if r.Release.FractionList == nil {
		r.Release.FractionList = r.Attach.FractionList
	}
	if r.Release.FractionIncrement == nil {
		r.Release.FractionIncrement = r.Attach.FractionIncrement
	}
	if r.Release.FCList == nil {
		r.Release.FCList = r.Attach.FCList
	}
}

//resolveMask turns one mask into an index slice, applying the AmberIndex
//offset. An unset mask gives nil; a set mask that matches nothing is a
//ResolutionError.
func resolveMask(sel AtomSelector, mask string, amber bool) ([]int, error) {
	if mask == "" {
		return nil, nil
	}
	raw, err := sel.Select(mask)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &ResolutionError{Mask: mask}
	}
	offset := 0
	if amber {
		offset = 1
	}
	indices := make([]int, 0, len(raw))
	last := -1
	for _, i := range raw {
		if i == last { //selector output is ascending, so dedup is local
			continue
		}
		last = i
		indices = append(indices, i+offset)
	}
	log.Debugw("resolved mask", "mask", mask, "atoms", len(indices))
	return indices, nil
}

//Initialize resolves the restraint's masks through sel and computes the
//schedule of every configured phase, returning a new ResolvedRestraint.
//r itself is not modified, and initializing the same specification twice
//gives the same result.
func Initialize(r Restraint, sel AtomSelector) (*ResolvedRestraint, error) {
	if r.Mask1 == "" || r.Mask2 == "" {
		return nil, &ConfigurationError{Context: "masks", Reason: "at least mask1 and mask2 must be set"}
	}
	if r.Mask4 != "" && r.Mask3 == "" {
		return nil, &ConfigurationError{Context: "masks", Reason: "mask4 is set but mask3 is not"}
	}
	applyAutoAPR(&r)

	res := &ResolvedRestraint{Restraint: r}
	var err error
	if res.Index1, err = resolveMask(sel, r.Mask1, r.AmberIndex); err != nil {
		return nil, err
	}
	if res.Index2, err = resolveMask(sel, r.Mask2, r.AmberIndex); err != nil {
		return nil, err
	}
	if res.Index3, err = resolveMask(sel, r.Mask3, r.AmberIndex); err != nil {
		return nil, err
	}
	if res.Index4, err = resolveMask(sel, r.Mask4, r.AmberIndex); err != nil {
		return nil, err
	}

	if res.attach, err = buildRamp(Attach, &r.Attach); err != nil {
		return nil, err
	}
	if res.pull, err = buildPull(&r.Pull); err != nil {
		return nil, err
	}
	if res.release, err = buildRamp(Release, &r.Release); err != nil {
		return nil, err
	}
	return res, nil
}
