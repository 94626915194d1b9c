package micro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/micro"
	"github.com/san-kum/thermochem/internal/parsing"
	"github.com/san-kum/thermochem/internal/thermo"
)

// spyMacro returns cv = 1000 + T and cv/R = 3 + T/1000 and counts calls.
type spyMacro struct {
	calls int
}

func (m *spyMacro) Cv(c *thermo.TempCache[float64], _ int) float64 {
	m.calls++
	return 1000 + c.T
}

func (m *spyMacro) CvOverR(c *thermo.TempCache[float64], _ int) float64 {
	m.calls++
	return 3 + c.T/1000
}

func ceaEvaluator[F float32 | float64](names ...string) (*thermo.CEAEvaluator[F], *chem.Mixture) {
	mix, err := chem.NewMixture(names, chem.DefaultCatalog())
	Expect(err).NotTo(HaveOccurred())
	table := thermo.NewCurveFitTable[F](mix)
	Expect(parsing.ReadCEADefault(table)).To(Succeed())
	eval, err := thermo.NewCEAEvaluator(table)
	Expect(err).NotTo(HaveOccurred())
	return eval, mix
}

var temperatures = []float64{50, 300, 1000, 5999, 6000, 15000, 30000}

var _ = Describe("IdealGas", func() {
	var (
		mix  *chem.Mixture
		spy  *spyMacro
		gas  *micro.IdealGas[float64, *spyMacro]
		e, n int
		n2   int
		h2o  int
	)

	BeforeEach(func() {
		var err error
		mix, err = chem.NewMixture([]string{"e", "N", "N2", "H2O"}, chem.DefaultCatalog())
		Expect(err).NotTo(HaveOccurred())
		spy = &spyMacro{}
		gas = micro.NewIdealGas[float64](spy, mix)
		e, n, n2, h2o = 0, 1, 2, 3
	})

	Describe("baselines", func() {
		It("splits translation and rotation by degrees of freedom", func() {
			rN2 := mix.R(n2)
			Expect(gas.CvTrans(n2)).To(BeNumerically("~", 1.5*rN2, 1e-9))
			Expect(gas.CvRot(n2)).To(BeNumerically("~", rN2, 1e-9))
			Expect(gas.CvTr(n2)).To(BeNumerically("~", 2.5*rN2, 1e-9))
			Expect(gas.CvTrOverR(n2)).To(Equal(2.5))
			Expect(gas.CvTransOverR(n2)).To(Equal(1.5))

			Expect(gas.CvRotOverR(h2o)).To(Equal(1.5))
			Expect(gas.CvRotOverR(n)).To(Equal(0.0))
			Expect(gas.CvRot(e)).To(Equal(0.0))
		})
	})

	Describe("CvVib", func() {
		It("is zero for species below two degrees of freedom", func() {
			for _, T := range temperatures {
				Expect(gas.CvVib(e, T)).To(Equal(0.0))
				Expect(gas.CvVib(n, T)).To(Equal(0.0))
				Expect(gas.CvVibOverR(e, T)).To(Equal(0.0))
				Expect(gas.CvVibOverR(n, T)).To(Equal(0.0))
			}
			Expect(spy.calls).To(BeZero())
		})

		It("subtracts the translational-rotational baseline", func() {
			T := 2000.0
			Expect(gas.CvVib(n2, T)).To(BeNumerically("~", 1000+T-2.5*mix.R(n2), 1e-9))
			Expect(gas.CvVibOverR(h2o, T)).To(BeNumerically("~", 3+T/1000-3.0, 1e-12))
			Expect(spy.calls).To(Equal(2))
		})

		It("keeps the temperature's precision", func() {
			eval, mix32 := ceaEvaluator[float32]("e", "N2")
			gas32 := micro.NewIdealGas[float32](eval, mix32)

			var zero float32
			Expect(gas32.CvVib(0, float32(3000))).To(Equal(zero))
			Expect(gas32.CvVib(1, float32(3000))).To(BeNumerically(">", 0))
		})
	})

	Describe("CvEl", func() {
		It("is always zero", func() {
			for _, T := range temperatures {
				Expect(gas.CvEl(n2, T)).To(Equal(0.0))
				Expect(gas.CvEl(e, T)).To(Equal(0.0))
			}
			Expect(gas.CvElMix(4000, []float64{0.1, 0.2, 0.3, 0.4})).To(Equal(0.0))
		})
	})

	Describe("batches", func() {
		It("returns a zero batch of the input width for the short circuit", func() {
			out := gas.CvVibBatch(e, temperatures)
			Expect(out).To(HaveLen(len(temperatures)))
			Expect(out).To(HaveEach(0.0))
			Expect(gas.CvVibOverRBatch(n, temperatures)).To(HaveEach(0.0))
			Expect(gas.CvElBatch(n2, temperatures)).To(HaveLen(len(temperatures)))
			Expect(gas.CvVibBatch(e, nil)).To(BeEmpty())
			Expect(spy.calls).To(BeZero())
		})

		It("matches the scalar path", func() {
			out := gas.CvVibBatch(n2, temperatures)
			outR := gas.CvVibOverRBatch(n2, temperatures)
			for i, T := range temperatures {
				Expect(out[i]).To(Equal(gas.CvVib(n2, T)))
				Expect(outR[i]).To(Equal(gas.CvVibOverR(n2, T)))
			}
		})
	})

	Describe("mixtures", func() {
		It("weights by mass fraction and skips species without vibration", func() {
			y := []float64{0.01, 0.09, 0.6, 0.3}
			T := 2500.0

			want := 0.6*gas.CvVib(n2, T) + 0.3*gas.CvVib(h2o, T)
			Expect(gas.CvVibMix(T, y)).To(BeNumerically("~", want, 1e-9))

			wantTr := 0.0
			for s, ys := range y {
				wantTr += ys * gas.CvTr(s)
			}
			Expect(gas.CvTrMix(y)).To(BeNumerically("~", wantTr, 1e-9))
		})

		It("panics when the fraction vector does not match the mixture", func() {
			short := []float64{1}
			long := []float64{0.2, 0.2, 0.2, 0.2, 0.2}

			Expect(func() { gas.CvTrMix(short) }).To(PanicWith(ContainSubstring("got 1, want 4")))
			Expect(func() { gas.CvVibMix(2000, short) }).To(Panic())
			Expect(func() { gas.CvElMix(2000, short) }).To(Panic())
			Expect(func() { gas.CvVibMix(2000, long) }).To(PanicWith(ContainSubstring("got 5, want 4")))
		})
	})
})

var _ = Describe("IdealGas over CEA curve fits", func() {
	It("recovers the total specific heat", func() {
		eval, mix := ceaEvaluator[float64]("N2", "O2", "Ar", "e")
		gas := micro.NewIdealGas[float64](eval, mix)

		for _, T := range []float64{300, 1000, 3000, 10000} {
			c := thermo.NewTempCache(T)
			for s := 0; s < 2; s++ {
				total := gas.CvTr(s) + gas.CvVib(s, T) + gas.CvEl(s, T)
				Expect(total).To(BeNumerically("~", eval.Cv(&c, s), 1e-9))
			}
		}
	})

	It("approaches one R of vibration for a hot diatomic", func() {
		eval, mix := ceaEvaluator[float64]("N2")
		gas := micro.NewIdealGas[float64](eval, mix)

		Expect(gas.CvVibOverR(0, 300)).To(BeNumerically("<", 0.05))
		Expect(gas.CvVibOverR(0, 3000)).To(BeNumerically("~", 0.9, 0.1))
	})

	It("works through the interface type", func() {
		eval, mix := ceaEvaluator[float64]("N2", "Ar")
		var macro micro.MacroThermo[float64] = eval
		gas := micro.NewIdealGas[float64](macro, mix)

		Expect(gas.CvVib(1, 2000)).To(Equal(0.0))
		Expect(gas.CvVib(0, 2000)).To(BeNumerically(">", 0))
	})
})
