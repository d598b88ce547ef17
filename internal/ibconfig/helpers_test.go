package ibconfig_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Antonboom/ib-instruments-config/internal/ibconfig"
)

var testdataDir string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	testdataDir = filepath.Join(filepath.Dir(currentFile), "testdata")
}

var d = decimal.RequireFromString

func nd(v string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d(v), Valid: true}
}

// newTestLogger returns the logger writing into the returned buffer.
func newTestLogger(t *testing.T) (zerolog.Logger, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)
	return zerolog.New(buf).Level(zerolog.DebugLevel), buf
}

// exampleConfig is SP500 and EDOLLAR as they are configured in production.
func exampleConfig() *ibconfig.Config {
	return ibconfig.NewConfig([]ibconfig.Row{
		{
			Instrument:     "SP500",
			IBSymbol:       "ES",
			IBExchange:     "GLOBEX",
			IBCurrency:     "USD",
			IBMultiplier:   nd("50"),
			PriceMagnifier: nd("1.0"),
			IgnoreWeekly:   false,
		},
		{
			Instrument:     "EDOLLAR",
			IBSymbol:       "GE",
			IBExchange:     "GLOBEX",
			IBCurrency:     "USD",
			IBMultiplier:   nd("2500"),
			PriceMagnifier: nd("1.0"),
			IgnoreWeekly:   true,
		},
	})
}
