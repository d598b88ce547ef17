package ibconfig //nolint:testpackage

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func lookupsCount(direction, result string) float64 {
	return testutil.ToFloat64(lookups.With(l{"direction": direction, "result": result}))
}

func TestLookupMetrics(t *testing.T) {
	logger := zerolog.Nop()
	cfg := NewConfig([]Row{
		{Instrument: "SP500", IBSymbol: "ES", IBExchange: "GLOBEX"},
		{Instrument: "GOLD", IBSymbol: "GC", IBExchange: "NYMEX"},
		{Instrument: "GOLD_micro", IBSymbol: "GC", IBExchange: "NYMEX"},
	})

	cases := []struct {
		name      string
		direction string
		result    string
		call      func()
	}{
		{
			name:      "forward ok",
			direction: directionForward,
			result:    lookupResultOK,
			call:      func() { GetInstrumentObject("SP500", cfg, logger) },
		},
		{
			name:      "forward not found",
			direction: directionForward,
			result:    lookupResultNotFound,
			call:      func() { GetInstrumentObject("UNKNOWN", cfg, logger) },
		},
		{
			name:      "forward source unavailable",
			direction: directionForward,
			result:    lookupResultNoSource,
			call:      func() { GetInstrumentObject("SP500", MissingConfig(), logger) },
		},
		{
			name:      "reverse ok",
			direction: directionReverse,
			result:    lookupResultOK,
			call:      func() { _, _ = GetInstrumentCodeFromBrokerCode(cfg, "ES", logger) },
		},
		{
			name:      "reverse not found",
			direction: directionReverse,
			result:    lookupResultNotFound,
			call:      func() { _, _ = GetInstrumentCodeFromBrokerCode(cfg, "XX", logger) },
		},
		{
			name:      "reverse ambiguous",
			direction: directionReverse,
			result:    lookupResultAmbiguous,
			call:      func() { _, _ = GetInstrumentCodeFromBrokerCode(cfg, "GC", logger) },
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			before := lookupsCount(tt.direction, tt.result)
			tt.call()
			assert.Equal(t, before+1, lookupsCount(tt.direction, tt.result))
		})
	}
}

func TestLoadMetrics(t *testing.T) {
	logger := zerolog.Nop()

	okBefore := testutil.ToFloat64(configLoads.With(l{"result": loadResultOK}))
	missingBefore := testutil.ToFloat64(configLoads.With(l{"result": loadResultMissing}))

	Load(DefaultSource(), logger)
	Load(FileSource("does-not-exist.csv"), logger)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(configLoads.With(l{"result": loadResultOK})))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(configLoads.With(l{"result": loadResultMissing})))
}

func TestCritical(t *testing.T) {
	var b strings.Builder
	logger := zerolog.New(&b)

	critical(logger).Msg("broken feed")
	assert.Contains(t, b.String(), `"level":"fatal"`)
	assert.Contains(t, b.String(), "broken feed")
}
