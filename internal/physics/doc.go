// Package physics provides the dynamical models for simulation.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [StoneSkip]: rigid thin body skating and skipping on a water surface
//   - [Ballistic]: point mass with gravity and quadratic air drag
//
// Both models implement [dynamo.Hamiltonian] for energy diagnostics and
// [dynamo.Configurable] for between-run parameter adjustment.
//
// # Phase dispatch
//
// StoneSkip switches its derivative on the contact regime (flying, bouncing,
// sinking). The regime is advanced by the simulator once per committed step:
//
//	p := model.AdvancePhase(x, t, dt)
//	x = integ.Step(model, x, t, dt)
//
// Derive itself never mutates the model, so the integrator may evaluate it on
// any number of trial states.
package physics
