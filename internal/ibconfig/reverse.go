package ibconfig

import (
	"github.com/rs/zerolog"

	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

// IB lists both AEX index futures under the same symbol.
const (
	aexSymbol         Symbol           = "EOE"
	aexInstrumentCode instruments.Code = "AEX"
)

// GetInstrumentCodeFromBrokerCode resolves the IB symbol back into the instrument code.
// Unlike GetInstrumentObject it fails: a broker feed referencing an unknown or
// ambiguous symbol is a configuration gap the caller must not ignore.
func GetInstrumentCodeFromBrokerCode(cfg *Config, ibSymbol Symbol, logger zerolog.Logger) (instruments.Code, error) {
	rows := cfg.rowsForSymbol(ibSymbol)

	switch len(rows) {
	case 0:
		err := &NotFoundError{Symbol: ibSymbol, ConfigMissing: cfg.Missing()}
		critical(logger).Msg(err.Error())
		collectLookup(directionReverse, lookupResultNotFound)
		return "", err

	case 1:
		collectLookup(directionReverse, lookupResultOK)
		return rows[0].Instrument, nil
	}

	return InstrumentCodeForAmbiguousSymbol(ibSymbol, rows, logger)
}

// InstrumentCodeForAmbiguousSymbol chooses the instrument among rows sharing the IB symbol.
// Only EOE (AEX) is supported.
// TODO: disambiguate by IBMultiplier once the contract multiplier is passed with the symbol.
func InstrumentCodeForAmbiguousSymbol(ibSymbol Symbol, rows []Row, logger zerolog.Logger) (instruments.Code, error) {
	if ibSymbol == aexSymbol {
		collectLookup(directionReverse, lookupResultOK)
		return aexInstrumentCode, nil
	}

	candidates := make([]instruments.Code, len(rows))
	for i, r := range rows {
		candidates[i] = r.Instrument
	}

	err := &AmbiguityError{Symbol: ibSymbol, Candidates: candidates}
	critical(logger).Strs("candidates", codesToStrings(candidates)).Msg(err.Error())
	collectLookup(directionReverse, lookupResultAmbiguous)
	return "", err
}

// critical logs at fatal level without exiting.
func critical(logger zerolog.Logger) *zerolog.Event {
	return logger.WithLevel(zerolog.FatalLevel)
}

func codesToStrings(codes []instruments.Code) []string {
	result := make([]string, len(codes))
	for i, c := range codes {
		result[i] = c.S()
	}
	return result
}
