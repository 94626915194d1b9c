// Package parsing reads CEA curve fit tables into a [thermo.CurveFitTable].
//
// The ASCII format is a sequence of species records. Lines starting with '#'
// are comments. Each record is
//
//	<name> <intervals> <formation enthalpy>
//	a0 a1 a2 a3 a4
//	a5 a6 a7 a8 a9
//	... (two rows per interval)
//
// Tokens are whitespace separated, so the row layout is conventional only.
// Records for species outside the table's mixture are read and dropped. A
// record cut short by end of input or by an unparsable token ends the read;
// the partial record is discarded and only the final completeness check
// reports the problem.
//
// A default dataset of about sixty species from the CEA program is embedded
// in the binary and read with [ReadCEADefault].
package parsing
