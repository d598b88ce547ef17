package ibconfig

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

const (
	colInstrument     = "Instrument"
	colIBSymbol       = "IBSymbol"
	colIBExchange     = "IBExchange"
	colIBCurrency     = "IBCurrency"
	colIBMultiplier   = "IBMultiplier"
	colPriceMagnifier = "priceMagnifier"
	colIgnoreWeekly   = "IgnoreWeekly"
)

var columns = []string{
	colInstrument,
	colIBSymbol,
	colIBExchange,
	colIBCurrency,
	colIBMultiplier,
	colPriceMagnifier,
	colIgnoreWeekly,
}

var validate = validator.New()

// Row is a single line of the IB futures configuration.
type Row struct {
	Instrument     instruments.Code    `validate:"required"`
	IBSymbol       Symbol              `validate:"required"`
	IBExchange     string              `validate:"required"`
	IBCurrency     string              // Empty if not required.
	IBMultiplier   decimal.NullDecimal // Invalid if not required.
	PriceMagnifier decimal.NullDecimal // Invalid means neutral scaling.
	IgnoreWeekly   bool
}

// Config is an immutable in-memory view of the IB futures configuration.
// A nil *Config and MissingConfig() both represent an unavailable configuration.
type Config struct {
	missing bool

	rows         []Row
	byInstrument map[instruments.Code]int
	bySymbol     map[Symbol][]int
}

// MissingConfig returns the configuration used when the source could not be read.
func MissingConfig() *Config {
	return &Config{missing: true}
}

// NewConfig builds the configuration from rows. The rows are copied.
func NewConfig(rows []Row) *Config {
	c := &Config{
		rows:         make([]Row, len(rows)),
		byInstrument: make(map[instruments.Code]int, len(rows)),
		bySymbol:     make(map[Symbol][]int, len(rows)),
	}
	copy(c.rows, rows)

	for i, r := range c.rows {
		if _, ok := c.byInstrument[r.Instrument]; !ok { // First match wins.
			c.byInstrument[r.Instrument] = i
		}
		c.bySymbol[r.IBSymbol] = append(c.bySymbol[r.IBSymbol], i)
	}
	return c
}

func (c *Config) Missing() bool {
	return c == nil || c.missing
}

// Len returns the number of rows, zero for the missing configuration.
func (c *Config) Len() int {
	if c.Missing() {
		return 0
	}
	return len(c.rows)
}

// Rows returns a copy of the configuration rows in source order.
func (c *Config) Rows() []Row {
	if c.Missing() {
		return nil
	}
	result := make([]Row, len(c.rows))
	copy(result, c.rows)
	return result
}

func (c *Config) rowForInstrument(code instruments.Code) (Row, bool) {
	if c.Missing() {
		return Row{}, false
	}
	i, ok := c.byInstrument[code]
	if !ok {
		return Row{}, false
	}
	return c.rows[i], true
}

func (c *Config) rowsForSymbol(symbol Symbol) []Row {
	if c.Missing() {
		return nil
	}
	idx := c.bySymbol[symbol]
	result := make([]Row, 0, len(idx))
	for _, i := range idx {
		result = append(result, c.rows[i])
	}
	return result
}

// Parse reads the configuration in CSV format.
// Header columns may come in any order, unknown columns are ignored.
func Parse(r io.Reader) (*Config, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty source")
		}
		return nil, fmt.Errorf("read header: %v", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read record: %v", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		rows = append(rows, row)
	}

	return NewConfig(rows), nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[h] = i
	}

	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}
	return index, nil
}

func parseRow(record []string, index map[string]int) (Row, error) {
	cell := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	multiplier, err := parseNullDecimal(cell(colIBMultiplier))
	if err != nil {
		return Row{}, fmt.Errorf("invalid %s: %v", colIBMultiplier, err)
	}

	magnifier, err := parseNullDecimal(cell(colPriceMagnifier))
	if err != nil {
		return Row{}, fmt.Errorf("invalid %s: %v", colPriceMagnifier, err)
	}
	if magnifier.Valid && !magnifier.Decimal.IsPositive() {
		return Row{}, fmt.Errorf("invalid %s: %s <= 0", colPriceMagnifier, magnifier.Decimal)
	}

	ignoreWeekly, err := parseBool(cell(colIgnoreWeekly))
	if err != nil {
		return Row{}, fmt.Errorf("invalid %s: %v", colIgnoreWeekly, err)
	}

	row := Row{
		Instrument:     instruments.Code(cell(colInstrument)),
		IBSymbol:       Symbol(cell(colIBSymbol)),
		IBExchange:     cell(colIBExchange),
		IBCurrency:     nanAsEmpty(cell(colIBCurrency)),
		IBMultiplier:   multiplier,
		PriceMagnifier: magnifier,
		IgnoreWeekly:   ignoreWeekly,
	}
	if err := validate.Struct(row); err != nil {
		return Row{}, err
	}
	return row, nil
}

func nanAsEmpty(v string) string {
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

func parseNullDecimal(v string) (decimal.NullDecimal, error) {
	if v = nanAsEmpty(v); v == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
