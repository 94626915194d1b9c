// Package micro splits the specific heat of a macro thermodynamic model into
// the modes used by thermal nonequilibrium flow models.
//
// [IdealGas] layers over any [MacroThermo]. Translational and rotational
// heat capacities follow from a species' degrees of freedom; the vibrational
// part is whatever the macro model carries beyond them:
//
//	cv_tr  = R_s * n_tr
//	cv_vib = cv_macro(T) - cv_tr     (0 when n_tr < 2)
//	cv_el  = 0
//
// Species with fewer than two translational-rotational degrees of freedom
// (atoms, free electrons) have no vibrational residual; returning the
// difference for them would only expose fit noise.
//
// IdealGas is generic over the macro model so each model gets its own
// instantiation. Passing an interface value for M is also fine.
package micro
