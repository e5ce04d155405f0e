// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif provides a single Leaky Integrate-and-Fire point neuron,
advanced in discrete time steps under an injected current.

The membrane potential Vm leaks toward the resting potential through
the membrane resistance R and integrates the injected current over the
capacitance C:

	dVm = ((VmRest - Vm) / R + I) / C * dt

When Vm reaches or exceeds the threshold Thr the neuron spikes and Vm
is set to the reset potential VmR.  Units are mV, MOhm, nF, nA and msec.

All state and constants are float32.  A float64 integration of the same
equation differs by roughly 1e-5 mV after a few steps, so a trajectory
that grazes Thr can spike one step earlier or later than in float64.

A Neuron holds no locks: a single Neuron must only be stepped from one
goroutine at a time, while distinct Neurons share nothing and can be
stepped in parallel.
*/
package lif

import (
	"cogentcore.org/core/base/errors"
)

var (
	// ErrInvalidCapacitance is returned by Step when the capacitance C is zero,
	// which would make the update a division by zero.
	ErrInvalidCapacitance = errors.New("lif: membrane capacitance C must be nonzero")

	// ErrInvalidResistance is returned by Step when the resistance R is zero.
	ErrInvalidResistance = errors.New("lif: membrane resistance R must be nonzero")

	// ErrNonFinite is returned when a parameter, dt, or the input current
	// is NaN or infinite.
	ErrNonFinite = errors.New("lif: value must be finite")
)
