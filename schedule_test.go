/*
 * schedule_test.go, part of goAPR.
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
)

func TestLinspace(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3}, linspace(0, 3, 4), 1e-12)
	assert.InDeltaSlice(t, []float64{5, 5}, linspace(5, 5, 2), 1e-12)
	assert.InDeltaSlice(t, []float64{2}, linspace(2, 7, 1), 1e-12)
}

func TestArange(t *testing.T) {
	//an increment that divides the span exactly ends on the final value
	assert.InDeltaSlice(t, []float64{0, 25, 50, 75}, arange(0, 100, 25), 1e-12)
	assert.InDeltaSlice(t, []float64{90, 91, 92, 93}, arange(90, 94, 1), 1e-12)
	//one that does not overshoots it: kept for compatibility with
	//schedules generated by earlier versions
	assert.InDeltaSlice(t, []float64{0, 0.33, 0.66, 0.99, 1.32}, arange(0, 1.33, 0.33), 1e-9)
	assert.Empty(t, arange(3, 3, 1))
}

func TestMethodPriority(t *testing.T) {
	//populated fields decide the method; when several are given the
	//fixed-count/increment/fraction order wins
	s := &RampSide{NumWindows: Int(3), FCIncrement: Float(1.0), FCList: []float64{1}}
	assert.Equal(t, methodFixedCount, rampMethod(s))
	s.NumWindows = nil
	assert.Equal(t, methodIncrement, rampMethod(s))
	s.FCIncrement = nil
	assert.Equal(t, methodExplicitList, rampMethod(s))
	assert.Equal(t, methodNone, rampMethod(&RampSide{Target: Float(1.0)}))

	p := &PullSide{FractionList: []float64{0, 1}, TargetList: []float64{5}}
	assert.Equal(t, methodFractionList, pullMethod(p))
	p.FractionList = nil
	assert.Equal(t, methodExplicitList, pullMethod(p))
	assert.Equal(t, methodNone, pullMethod(&PullSide{FC: Float(2.0)}))
}

func TestBuildRampValidation(t *testing.T) {
	var cfgErr *ConfigurationError

	_, err := buildRamp(Attach, &RampSide{NumWindows: Int(4)})
	require.ErrorAs(t, err, &cfgErr)
	_, err = buildRamp(Attach, &RampSide{NumWindows: Int(0), FCFinal: Float(1.0)})
	require.ErrorAs(t, err, &cfgErr)
	_, err = buildRamp(Release, &RampSide{FCIncrement: Float(-1.0), FCFinal: Float(1.0)})
	require.ErrorAs(t, err, &cfgErr)
	_, err = buildRamp(Release, &RampSide{FractionIncrement: Float(0.0), FCFinal: Float(1.0)})
	require.ErrorAs(t, err, &cfgErr)

	pd, err := buildRamp(Attach, &RampSide{})
	require.NoError(t, err)
	assert.Nil(t, pd)

	_, err = buildPull(&PullSide{NumWindows: Int(4)})
	require.ErrorAs(t, err, &cfgErr)
	_, err = buildPull(&PullSide{TargetIncrement: Float(0.0), TargetFinal: Float(1.0)})
	require.ErrorAs(t, err, &cfgErr)

	pd, err = buildPull(&PullSide{})
	require.NoError(t, err)
	assert.Nil(t, pd)
}
