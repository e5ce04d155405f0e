// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "fmt"

// Neuron is a Leaky Integrate-and-Fire neuron: the fixed constants
// plus the membrane potential state, advanced one step at a time by Step.
type Neuron struct {

	// constants, fixed at construction
	pars Params

	// result of pars.Validate, reported by every Step when non-nil
	parsErr error

	// membrane potential in mV
	vm float32

	// 1 if the last step spiked, else 0
	spike float32

	// current inter-spike interval in steps: counts up since last spike.
	// Starts at -1 when initialized.
	isi float32

	// average inter-spike interval in steps.  Starts at -1 when initialized,
	// goes to -2 after the first spike, and is only valid after the second
	// spike post-initialization.
	isiAvg float32
}

// NewNeuron returns a neuron with default params, at rest.
func NewNeuron() *Neuron {
	var pars Params
	pars.Defaults()
	return NewNeuronParams(pars)
}

// NewNeuronParams returns a neuron using the given params, at rest.
// Invalid params are not rejected here: they are reported by Step.
func NewNeuronParams(pars Params) *Neuron {
	pars.Update()
	nrn := &Neuron{pars: pars, parsErr: pars.Validate()}
	nrn.Init()
	return nrn
}

// Init returns the neuron to its initial state: Vm = VmRest, no spike history.
func (nrn *Neuron) Init() {
	nrn.vm = nrn.pars.VmRest
	nrn.spike = 0
	nrn.isi = -1
	nrn.isiAvg = -1
}

// Params returns a copy of the constants.
func (nrn *Neuron) Params() Params { return nrn.pars }

// Vm returns the membrane potential in mV.
func (nrn *Neuron) Vm() float32 { return nrn.vm }

// Spiked reports whether the last Step produced a spike.
func (nrn *Neuron) Spiked() bool { return nrn.spike > 0 }

// ISI returns the number of steps since the last spike, or -1 before the first.
func (nrn *Neuron) ISI() float32 { return nrn.isi }

// ISIAvg returns the running average inter-spike interval in steps,
// negative until two spikes have occurred.
func (nrn *Neuron) ISIAvg() float32 { return nrn.isiAvg }

// Step advances the membrane potential by one time step of dt msec
// under the injected current inet (nA), and reports whether the neuron
// spiked.  On a spike Vm has already been set to VmR when Step returns.
//
// Step fails, leaving the state untouched, if R or C is zero, or if any
// constant, dt, or inet is not finite.  dt <= 0 is accepted and
// integrates backward or not at all.  Errors are returned, not logged.
func (nrn *Neuron) Step(dt, inet float32) (bool, error) {
	if nrn.parsErr != nil {
		return false, nrn.parsErr
	}
	if !isFinite(dt) {
		return false, fmt.Errorf("lif.Step: dt = %v: %w", dt, ErrNonFinite)
	}
	if !isFinite(inet) {
		return false, fmt.Errorf("lif.Step: inet = %v: %w", inet, ErrNonFinite)
	}
	lp := &nrn.pars
	// explicit rounding keeps the compiler from fusing the multiply into the add
	dvm := float32(((lp.VmRest-nrn.vm)/lp.R + inet) / lp.C * dt)
	nrn.vm += dvm
	if nrn.vm >= lp.Thr {
		nrn.vm = lp.VmR
		nrn.spikeUpdate(true)
		return true, nil
	}
	nrn.spikeUpdate(false)
	return false, nil
}

// spikeUpdate maintains the Spike flag and the ISI statistics.
func (nrn *Neuron) spikeUpdate(spiked bool) {
	if spiked {
		nrn.spike = 1
		if nrn.isiAvg == -1 {
			nrn.isiAvg = -2
		} else { // isi is 0 when spiking on consecutive steps: interval of 1
			nrn.pars.AvgFromISI(&nrn.isiAvg, nrn.isi+1)
		}
		nrn.isi = 0
		return
	}
	nrn.spike = 0
	if nrn.isi >= 0 {
		nrn.isi += 1
	}
	// long silence pulls the average up before the next spike arrives
	if nrn.isiAvg >= 0 && nrn.isi > 0 && nrn.isi > 1.2*nrn.isiAvg {
		nrn.pars.AvgFromISI(&nrn.isiAvg, nrn.isi)
	}
}

func (nrn *Neuron) String() string {
	return fmt.Sprintf("lif.Neuron{Vm: %g, Spike: %g, ISI: %g, ISIAvg: %g}", nrn.vm, nrn.spike, nrn.isi, nrn.isiAvg)
}
