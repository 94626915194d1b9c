package parsing_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/parsing"
	"github.com/san-kum/thermochem/internal/thermo"
)

const twoSpecies = `# test data
# Cp/R = ...

Ar  2  0.000
  0.00000000e+00  0.00000000e+00  2.50000000e+00  0.00000000e+00  0.00000000e+00
  0.00000000e+00  0.00000000e+00  0.00000000e+00 -7.45375000e+02  4.37967491e+00
  2.01053848e+01 -5.99266107e-02  2.50006940e+00 -3.99214116e-08  1.20527214e-11
 -1.81901558e-15  1.07857664e-19  0.00000000e+00 -7.44993961e+02  4.37918011e+00

# monatomic stand-in
Xe  1  12.5
  0. 0. 2.5 0. 0.
  0. 0. 0. 0. 0.
`

func newTable(names ...string) *thermo.CurveFitTable[float64] {
	mix, err := chem.NewMixtureFromSpecies(speciesFor(names))
	Expect(err).NotTo(HaveOccurred())
	return thermo.NewCurveFitTable[float64](mix)
}

func speciesFor(names []string) []chem.Species {
	out := make([]chem.Species, 0, len(names))
	for _, name := range names {
		sp, ok := chem.DefaultCatalog().Lookup(name)
		if !ok {
			sp = chem.Species{Name: name, MolarMass: 0.131, NTrDOFs: 1.5}
		}
		out = append(out, sp)
	}
	return out
}

var _ = Describe("ReadCEA", func() {
	Context("with the embedded dataset", func() {
		It("populates an air mixture", func() {
			table := newTable("Ar", "N2", "O2")
			Expect(parsing.ReadCEADefault(table)).To(Succeed())
			Expect(table.Check()).To(BeTrue())

			ar := table.CurveFit(0)
			Expect(ar.NIntervals()).To(Equal(3))
			Expect(ar.Coefficients(0)[2]).To(Equal(2.50000000e+00))
			Expect(table.CurveFit(1).Coefficients(0)[0]).To(Equal(2.21037122e+04))
		})

		It("keeps formation enthalpies", func() {
			table := newTable("NO", "H2O", "e")
			Expect(parsing.ReadCEADefault(table)).To(Succeed())

			Expect(table.CurveFit(0).FormationEnthalpy()).To(Equal(91269.110))
			Expect(table.CurveFit(1).FormationEnthalpy()).To(Equal(-241826.0))
			Expect(table.CurveFit(1).NIntervals()).To(Equal(2))
			Expect(table.CurveFit(2).NIntervals()).To(Equal(3))
		})

		It("covers every species in the default catalog", func() {
			names, err := parsing.ScanSpeciesNames(parsing.DefaultCEAData())
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(HaveLen(60))
			Expect(names[0]).To(Equal("Ar"))
			Expect(names[len(names)-1]).To(Equal("e"))

			mix, err := chem.NewMixture(names, chem.DefaultCatalog())
			Expect(err).NotTo(HaveOccurred())
			table := thermo.NewCurveFitTable[float64](mix)
			Expect(parsing.ReadCEADefault(table)).To(Succeed())
		})

		It("reads in single precision", func() {
			mix, err := chem.NewMixture([]string{"Ar"}, chem.DefaultCatalog())
			Expect(err).NotTo(HaveOccurred())
			table := thermo.NewCurveFitTable[float32](mix)
			Expect(parsing.ReadCEADefault(table)).To(Succeed())
			Expect(table.CurveFit(0).Coefficients(0)[2]).To(Equal(float32(2.5)))
		})
	})

	Context("with a custom stream", func() {
		It("ignores records for inactive species", func() {
			table := newTable("Xe")
			Expect(parsing.ReadCEA(strings.NewReader(twoSpecies), table)).To(Succeed())
			Expect(table.CurveFit(0).NIntervals()).To(Equal(1))
			Expect(table.CurveFit(0).FormationEnthalpy()).To(Equal(12.5))
		})

		It("fails when an active species is never supplied", func() {
			table := newTable("Ar", "Kr")
			err := parsing.ReadCEA(strings.NewReader(twoSpecies), table)
			Expect(err).To(MatchError(thermo.ErrIncompleteTable))

			var incomplete *thermo.IncompleteTableError
			Expect(err).To(BeAssignableToTypeOf(incomplete))
			Expect(err.(*thermo.IncompleteTableError).Missing).To(Equal([]string{"Kr"}))
		})

		It("drops a record cut short by end of input", func() {
			truncated := twoSpecies[:strings.Index(twoSpecies, "  0. 0. 0. 0. 0.")]
			table := newTable("Ar", "Xe")

			core, logs := observer.New(zapcore.WarnLevel)
			err := parsing.ReadCEA(strings.NewReader(truncated), table, parsing.WithLogger(zap.New(core)))

			Expect(err).To(MatchError(thermo.ErrIncompleteTable))
			Expect(table.CurveFit(0)).NotTo(BeNil())
			Expect(table.CurveFit(1)).To(BeNil())
			Expect(logs.FilterMessage("discarding partial curve fit record").Len()).To(Equal(1))
		})

		It("stops at an unparsable token", func() {
			bad := strings.Replace(twoSpecies, "Ar  2  0.000", "Ar  2  zero", 1)
			table := newTable("Xe")

			err := parsing.ReadCEA(strings.NewReader(bad), table)
			Expect(err).To(MatchError(thermo.ErrIncompleteTable))
		})

		It("rejects an active record with too many intervals", func() {
			data := "Xe 4 0.0\n" + strings.Repeat("0. 0. 2.5 0. 0.\n0. 0. 0. 0. 0.\n", 4)
			table := newTable("Xe")

			err := parsing.ReadCEA(strings.NewReader(data), table)
			Expect(err).To(MatchError(thermo.ErrTooManyIntervals))
		})

		It("treats an empty stream as end of data", func() {
			table := newTable("Ar")
			err := parsing.ReadCEA(strings.NewReader("# nothing here\n"), table)
			Expect(err).To(MatchError(thermo.ErrIncompleteTable))
		})

		It("accepts any row layout", func() {
			oneLine := "Xe 1 0.0 0 0 2.5 0 0 0 0 0 -745.375 4.3\n"
			table := newTable("Xe")
			Expect(parsing.ReadCEA(strings.NewReader(oneLine), table)).To(Succeed())
			Expect(table.CurveFit(0).Coefficients(0)[9]).To(Equal(4.3))
		})
	})

	Context("from a file", func() {
		It("reads the same data as a stream", func() {
			path := filepath.Join(GinkgoT().TempDir(), "thermo.dat")
			Expect(os.WriteFile(path, []byte(twoSpecies), 0644)).To(Succeed())

			table := newTable("Ar", "Xe")
			Expect(parsing.ReadCEAFile(path, table)).To(Succeed())
			Expect(table.Check()).To(BeTrue())
		})

		It("reports a missing file", func() {
			table := newTable("Ar")
			err := parsing.ReadCEAFile(filepath.Join(GinkgoT().TempDir(), "absent.dat"), table)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})

var _ = Describe("ScanSpeciesNames", func() {
	It("lists complete records only", func() {
		truncated := twoSpecies[:strings.Index(twoSpecies, "  0. 0. 0. 0. 0.")]
		names, err := parsing.ScanSpeciesNames(strings.NewReader(truncated))
		Expect(err).NotTo(HaveOccurred())
		Expect(names).To(Equal([]string{"Ar"}))
	})
})
