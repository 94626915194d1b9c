// Package viz provides the terminal property explorer.
//
// [Explorer] is a Bubble Tea model showing the CEA properties and the cv
// split of one species at one temperature, with a Cp sparkline over the
// full curve-fit range.
//
// # Key Bindings
//
//	j/k or up/down     - Select species
//	h/l or left/right  - Lower/raise temperature
//	+/-                - Grow/shrink the temperature step
//	t                  - Cycle color themes
//	q                  - Quit
package viz
