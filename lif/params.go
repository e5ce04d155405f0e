// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Params are the biophysical constants of the LIF neuron.
// Call Update after changing any of them, before building a Neuron.
type Params struct {

	// resting potential in mV that Vm decays toward in the absence of input
	VmRest float32 `default:"-70"`

	// spike threshold in mV: a step that ends with Vm >= Thr is a spike
	Thr float32 `default:"-55"`

	// reset potential in mV assigned to Vm immediately after a spike.
	// Below VmRest it produces an after-hyperpolarization.
	VmR float32 `default:"-75"`

	// membrane resistance in MOhm
	R float32 `default:"10"`

	// membrane capacitance in nF.  Must be nonzero.
	C float32 `default:"1"`

	// time constant, in steps, for integrating the inter-spike interval
	// into ISIAvg
	ISITau float32 `default:"5" min:"1"`

	// rate = 1 / ISITau
	ISIDt float32 `display:"-" json:"-" toml:"-"`
}

func (lp *Params) Defaults() {
	lp.VmRest = -70
	lp.Thr = -55
	lp.VmR = -75
	lp.R = 10
	lp.C = 1
	lp.ISITau = 5
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *Params) Update() {
	if lp.ISITau < 1 {
		lp.ISITau = 1
	}
	lp.ISIDt = 1 / lp.ISITau
}

// Validate reports every constant that makes the update ill-defined:
// a zero R or C, or any non-finite constant.
func (lp *Params) Validate() error {
	var errs []error
	vals := []struct {
		name string
		val  float32
	}{{"VmRest", lp.VmRest}, {"Thr", lp.Thr}, {"VmR", lp.VmR}, {"R", lp.R}, {"C", lp.C}}
	for _, v := range vals {
		if !isFinite(v.val) {
			errs = append(errs, fmt.Errorf("param %s = %v: %w", v.name, v.val, ErrNonFinite))
		}
	}
	if lp.R == 0 {
		errs = append(errs, ErrInvalidResistance)
	}
	if lp.C == 0 {
		errs = append(errs, ErrInvalidCapacitance)
	}
	return errors.Join(errs...)
}

// VmInf returns the steady-state potential for a constant input current,
// which Vm approaches when no spike intervenes.
func (lp *Params) VmInf(inet float32) float32 {
	return lp.VmRest + lp.R*inet
}

// Rheobase returns the constant current at which VmInf equals Thr.
// Currents above it make the neuron fire periodically.
func (lp *Params) Rheobase() float32 {
	return (lp.Thr - lp.VmRest) / lp.R
}

// AvgFromISI updates the running average spiking interval from the
// current isi interval value.
func (lp *Params) AvgFromISI(avg *float32, isi float32) {
	if *avg <= 0 {
		*avg = isi
	} else if isi < 0.8**avg {
		*avg = isi // if significantly less than we take that
	} else {
		*avg += lp.ISIDt * (isi - *avg)
	}
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
