package instruments

// Code is the client-facing instrument code, e.g. "SP500" or "EDOLLAR".
type Code string

func (c Code) S() string { return string(c) }

// FuturesInstrument is the generic identity of a futures instrument.
// Broker specific parameters are attached by the broker packages.
type FuturesInstrument struct {
	Code Code `json:"instrument_code"`
}

func NewFuturesInstrument(code Code) FuturesInstrument {
	return FuturesInstrument{Code: code}
}

func (i FuturesInstrument) String() string {
	return i.Code.S()
}

// Empty reports whether the instrument has no code.
func (i FuturesInstrument) Empty() bool {
	return i.Code == ""
}
