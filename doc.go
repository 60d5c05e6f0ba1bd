// SPDX-FileCopyrightText: © 2024 Tiny Tapeout
// SPDX-License-Identifier: Apache-2.0

/*
Package fiboblink is a cycle-accurate model of the FiboBlink synchronous
logic core: a small Tiny Tapeout design that blinks an LED with timing
derived from successive terms of a selectable integer sequence (Fibonacci,
primes, perfect squares, triangular numbers).

The model reproduces the register-level contract of the silicon. One call
to Core.Step corresponds to one rising clock edge: all next-state values
are computed from the registers committed on the previous edge, then
committed and encoded into the two output words atomically. There are no
observable intermediate states within an edge.

*/
package fiboblink
