// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif is the overall repository for the Leaky Integrate-and-Fire
point neuron implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* lif: the neuron itself, with its Params (resting, threshold and reset
potentials, membrane resistance and capacitance) and the Step update that
integrates an injected current over one time step and reports spikes.

* examples: these actually compile into runnable programs.  examples/lif
drives one neuron with a constant current, configured by config.toml
and command-line args, and prints when it spiked and its firing rate.
*/
package lif
