package micro

import (
	"fmt"

	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/numeric"
	"github.com/san-kum/thermochem/internal/thermo"
)

// MacroThermo is the total specific heat model the decomposition subtracts from.
type MacroThermo[F numeric.Float] interface {
	// Cv is the species specific heat at constant volume in J/kg-K.
	Cv(c *thermo.TempCache[F], s int) F
	CvOverR(c *thermo.TempCache[F], s int) F
}

// minVibDOFs is the translational-rotational count below which a species has
// no vibrational modes.
const minVibDOFs = 2

// IdealGas decomposes the specific heat of macro model M.
type IdealGas[F numeric.Float, M MacroThermo[F]] struct {
	macro M
	mix   *chem.Mixture
}

func NewIdealGas[F numeric.Float, M MacroThermo[F]](macro M, mix *chem.Mixture) *IdealGas[F, M] {
	return &IdealGas[F, M]{macro: macro, mix: mix}
}

func (g *IdealGas[F, M]) Macro() M { return g.macro }

func (g *IdealGas[F, M]) Mixture() *chem.Mixture { return g.mix }

func (g *IdealGas[F, M]) hasVibration(s int) bool {
	return g.mix.NTrDOFs(s) >= minVibDOFs
}

// CvTrans is the translational specific heat, 1.5 R_s.
func (g *IdealGas[F, M]) CvTrans(s int) F {
	return F(1.5 * g.mix.R(s))
}

func (g *IdealGas[F, M]) CvTransOverR(int) F {
	return 1.5
}

// CvRot is the rotational specific heat, R_s * max(n_tr - 1.5, 0).
func (g *IdealGas[F, M]) CvRot(s int) F {
	return F(g.mix.R(s)) * g.CvRotOverR(s)
}

func (g *IdealGas[F, M]) CvRotOverR(s int) F {
	return numeric.Max(F(g.mix.NTrDOFs(s)-1.5), 0)
}

// CvTr is the combined translational-rotational specific heat, R_s * n_tr.
func (g *IdealGas[F, M]) CvTr(s int) F {
	return F(g.mix.R(s) * g.mix.NTrDOFs(s))
}

func (g *IdealGas[F, M]) CvTrOverR(s int) F {
	return F(g.mix.NTrDOFs(s))
}

// CvVib is the vibrational specific heat of species s in J/kg-K.
func (g *IdealGas[F, M]) CvVib(s int, T F) F {
	if !g.hasVibration(s) {
		return numeric.ZeroLike(T)
	}
	c := thermo.NewTempCache(T)
	return g.macro.Cv(&c, s) - g.CvTr(s)
}

func (g *IdealGas[F, M]) CvVibOverR(s int, T F) F {
	if !g.hasVibration(s) {
		return numeric.ZeroLike(T)
	}
	c := thermo.NewTempCache(T)
	return g.macro.CvOverR(&c, s) - g.CvTrOverR(s)
}

// CvEl is the electronic specific heat. Electronic states are not populated.
func (g *IdealGas[F, M]) CvEl(_ int, T F) F {
	return numeric.ZeroLike(T)
}

// CvVibBatch evaluates CvVib over a batch of temperatures.
func (g *IdealGas[F, M]) CvVibBatch(s int, Ts []F) []F {
	out := numeric.ZeroLikeSlice(Ts)
	if !g.hasVibration(s) {
		return out
	}
	cvTr := g.CvTr(s)
	for i, T := range Ts {
		c := thermo.NewTempCache(T)
		out[i] = g.macro.Cv(&c, s) - cvTr
	}
	return out
}

func (g *IdealGas[F, M]) CvVibOverRBatch(s int, Ts []F) []F {
	out := numeric.ZeroLikeSlice(Ts)
	if !g.hasVibration(s) {
		return out
	}
	cvTr := g.CvTrOverR(s)
	for i, T := range Ts {
		c := thermo.NewTempCache(T)
		out[i] = g.macro.CvOverR(&c, s) - cvTr
	}
	return out
}

func (g *IdealGas[F, M]) CvElBatch(_ int, Ts []F) []F {
	return numeric.ZeroLikeSlice(Ts)
}

func (g *IdealGas[F, M]) checkFractions(n int) {
	if want := g.mix.NSpecies(); n != want {
		panic(fmt.Sprintf("%v: got %d, want %d", chem.ErrFractionLength, n, want))
	}
}

// CvTrMix is the mass-weighted translational-rotational specific heat.
// massFractions must have one entry per species.
func (g *IdealGas[F, M]) CvTrMix(massFractions []F) F {
	g.checkFractions(len(massFractions))
	var cv F
	for s, y := range massFractions {
		cv += y * g.CvTr(s)
	}
	return cv
}

// CvVibMix is the mass-weighted vibrational specific heat. One cache is
// shared across species.
func (g *IdealGas[F, M]) CvVibMix(T F, massFractions []F) F {
	g.checkFractions(len(massFractions))
	cv := numeric.ZeroLike(T)
	c := thermo.NewTempCache(T)
	for s, y := range massFractions {
		if !g.hasVibration(s) {
			continue
		}
		cv += y * (g.macro.Cv(&c, s) - g.CvTr(s))
	}
	return cv
}

func (g *IdealGas[F, M]) CvElMix(T F, massFractions []F) F {
	g.checkFractions(len(massFractions))
	return numeric.ZeroLike(T)
}
