package parsing

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/thermochem/internal/numeric"
	"github.com/san-kum/thermochem/internal/thermo"
	"go.uber.org/zap"
)

//go:embed data/cea_thermo.dat
var defaultCEAData string

var (
	errTruncated = errors.New("input ended inside a record")
	errBadToken  = errors.New("unparsable token")
)

type options struct {
	logger *zap.Logger
}

// Option configures a read.
type Option func(*options)

// WithLogger routes parser diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DefaultCEAData returns a reader over the embedded dataset.
func DefaultCEAData() io.Reader {
	return strings.NewReader(defaultCEAData)
}

// ReadCEADefault fills table from the embedded dataset.
func ReadCEADefault[F numeric.Float](table *thermo.CurveFitTable[F], opts ...Option) error {
	return ReadCEA(DefaultCEAData(), table, opts...)
}

// ReadCEAFile fills table from the file at path.
func ReadCEAFile[F numeric.Float](path string, table *thermo.CurveFitTable[F], opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadCEA(f, table, opts...)
}

// ReadCEA reads every record from r, adds those of active species to table
// and validates the result. An incomplete table is reported as
// *thermo.IncompleteTableError.
func ReadCEA[F numeric.Float](r io.Reader, table *thermo.CurveFitTable[F], opts ...Option) error {
	o := buildOptions(opts)
	mix := table.Mixture()
	tok := newTokenizer(r)

	added := 0
	for {
		rec, line, err := readRecord[F](tok)
		if err == io.EOF {
			break
		}
		if err != nil {
			o.logger.Warn("discarding partial curve fit record",
				zap.String("species", rec.Name),
				zap.Int("line", line),
				zap.Error(err))
			break
		}

		if !mix.IsActive(rec.Name) {
			o.logger.Debug("skipping inactive species", zap.String("species", rec.Name))
			continue
		}

		if err := table.AddRecord(rec); err != nil {
			return fmt.Errorf("parsing: line %d: %w", line, err)
		}
		added++
	}

	if err := tok.err(); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	if err := table.Validate(); err != nil {
		o.logger.Error("curve fit table not fully populated",
			zap.Strings("missing", table.Missing()))
		return err
	}

	o.logger.Debug("curve fit table populated", zap.Int("records", added))
	return nil
}

// ScanSpeciesNames returns the names of the complete records in r, in order.
func ScanSpeciesNames(r io.Reader) ([]string, error) {
	tok := newTokenizer(r)
	var names []string
	for {
		rec, _, err := readRecord[float64](tok)
		if err != nil {
			break
		}
		names = append(names, rec.Name)
	}
	if err := tok.err(); err != nil {
		return nil, err
	}
	return names, nil
}

// readRecord returns io.EOF only when the input ends cleanly between records.
// line is where the record header was read.
func readRecord[F numeric.Float](tok *tokenizer) (thermo.Record[F], int, error) {
	var rec thermo.Record[F]

	name, ok := tok.next()
	if !ok {
		return rec, tok.line, io.EOF
	}
	rec.Name = name
	line := tok.line

	field, ok := tok.next()
	if !ok {
		return rec, line, errTruncated
	}
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return rec, line, fmt.Errorf("%w: interval count %q", errBadToken, field)
	}

	field, ok = tok.next()
	if !ok {
		return rec, line, errTruncated
	}
	hForm, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return rec, line, fmt.Errorf("%w: formation enthalpy %q", errBadToken, field)
	}
	rec.FormationEnthalpy = F(hForm)

	count := int(n) * thermo.CoeffsPerInterval
	rec.Coefficients = make([]F, 0, min(count, thermo.MaxIntervals*thermo.CoeffsPerInterval))
	for i := 0; i < count; i++ {
		field, ok := tok.next()
		if !ok {
			return rec, line, errTruncated
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return rec, line, fmt.Errorf("%w: coefficient %q", errBadToken, field)
		}
		rec.Coefficients = append(rec.Coefficients, F(v))
	}

	return rec, line, nil
}

type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{sc: bufio.NewScanner(r)}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		t.line++
		text := strings.TrimSpace(t.sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		t.fields = strings.Fields(text)
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, true
}

func (t *tokenizer) err() error {
	return t.sc.Err()
}
