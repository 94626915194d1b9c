// Package analysis provides temperature sweeps and curve-fit diagnostics on
// top of the float64 CEA evaluator.
//
//   - [TemperatureGrid]: evenly spaced temperatures
//   - [Model.SweepSpecies]: species properties and cv split over a grid
//   - [Model.SweepAll]: concurrent sweep of several species
//   - [Model.SweepMixture]: mass-weighted mixture properties over a grid
//   - [Continuity]: jumps in Cp, H and S at interval boundaries
//
// # Boundary Check
//
//	jumps := analysis.ContinuityAll(eval)
//	if j, ok := analysis.MaxJump(jumps); ok && j.Worst() > 1e-3 {
//	    // fit is discontinuous at j.Boundary
//	}
package analysis
