// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"math"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestParamsDefaults(t *testing.T) {
	var lp Params
	lp.Defaults()
	assert.NoError(t, lp.Validate())
	assert.Equal(t, float32(0.2), lp.ISIDt)
	assert.Equal(t, float32(-70), lp.VmInf(0))
	assert.Equal(t, float32(-50), lp.VmInf(2))
}

func TestParamsUpdate(t *testing.T) {
	var lp Params
	lp.Defaults()
	lp.ISITau = 10
	lp.Update()
	assert.InDelta(t, 0.1, lp.ISIDt, 1e-7)

	lp.ISITau = 0
	lp.Update()
	assert.Equal(t, float32(1), lp.ISITau)
	assert.Equal(t, float32(1), lp.ISIDt)
}

func TestParamsValidate(t *testing.T) {
	var lp Params
	lp.Defaults()
	lp.C = 0
	lp.R = 0
	err := lp.Validate()
	assert.True(t, errors.Is(err, ErrInvalidCapacitance))
	assert.True(t, errors.Is(err, ErrInvalidResistance))
	assert.False(t, errors.Is(err, ErrNonFinite))

	lp.Defaults()
	lp.Thr = float32(math.Inf(1))
	err = lp.Validate()
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.ErrorContains(t, err, "Thr")

	nrn := NewNeuronParams(lp)
	_, err = nrn.Step(1, 1)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Equal(t, float32(-70), nrn.Vm())
}

func TestAvgFromISI(t *testing.T) {
	var lp Params
	lp.Defaults()
	avg := float32(-2)
	lp.AvgFromISI(&avg, 10)
	assert.Equal(t, float32(10), avg)
	lp.AvgFromISI(&avg, 5) // much shorter: taken directly
	assert.Equal(t, float32(5), avg)
	lp.AvgFromISI(&avg, 10) // longer: integrated at ISIDt
	assert.Equal(t, float32(6), avg)
}
