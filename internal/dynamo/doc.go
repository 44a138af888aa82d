// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Hamiltonian]: energy reporting for drift diagnostics
//
// # Example
//
//	dyn := physics.NewStoneSkip(props, env)
//	integ := integrators.NewRK4()
//	s := sim.New(dyn, integ)
//	result, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Systems and integrators are NOT thread-safe. Each concurrent run must use
// its own instances; see the sweep package for parallel parameter studies.
package dynamo
