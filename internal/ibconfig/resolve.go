package ibconfig

import (
	"github.com/rs/zerolog"

	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

// LookupStatus tells apart the outcomes of the instrument code lookup.
type LookupStatus int

const (
	LookupOK LookupStatus = iota + 1
	LookupSourceUnavailable
	LookupNotFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupOK:
		return lookupResultOK
	case LookupSourceUnavailable:
		return lookupResultNoSource
	case LookupNotFound:
		return lookupResultNotFound
	default:
		return "unknown"
	}
}

// Lookup is the result of GetInstrumentObject.
// Instrument is meaningful only if Status is LookupOK.
type Lookup struct {
	Status     LookupStatus
	Instrument InstrumentWithConfigData
}

func (r Lookup) OK() bool {
	return r.Status == LookupOK
}

// GetInstrumentObject resolves the instrument code into IB parameters.
// Missing configuration and unknown codes are expected outcomes: they are logged
// and reported through Lookup.Status.
func GetInstrumentObject(code instruments.Code, cfg *Config, logger zerolog.Logger) Lookup {
	logger = logger.With().Str("instrument_code", code.S()).Logger()

	if cfg.Missing() {
		logger.Warn().Msgf("Can't get config for instrument %s as IB configuration file missing", code)
		return lookupFailed(LookupSourceUnavailable)
	}

	row, ok := cfg.rowForInstrument(code)
	if !ok {
		logger.Warn().Msgf("Instrument %s is not in IB configuration file", code)
		return lookupFailed(LookupNotFound)
	}

	collectLookup(directionForward, lookupResultOK)
	return Lookup{
		Status: LookupOK,
		Instrument: InstrumentWithConfigData{
			Instrument: instruments.NewFuturesInstrument(code),
			IBData:     newConfigData(row),
		},
	}
}

func lookupFailed(s LookupStatus) Lookup {
	collectLookup(directionForward, s.String())
	return Lookup{Status: s}
}

// GetInstrumentList returns instrument codes in configuration order.
// Duplicates are kept. The list is empty if the configuration is missing.
func GetInstrumentList(cfg *Config, logger zerolog.Logger) []instruments.Code {
	if cfg.Missing() {
		logger.Warn().Msg("Can't get list of instruments because IB configuration file missing")
		return []instruments.Code{}
	}

	result := make([]instruments.Code, 0, cfg.Len())
	for _, r := range cfg.rows {
		result = append(result, r.Instrument)
	}
	return result
}
