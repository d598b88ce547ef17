package ibconfig

// Symbol is the IB native symbol of a contract, e.g. "ES" or "GE".
// Unlike instrument codes, symbols are not unique across the configuration.
type Symbol string

func (s Symbol) S() string { return string(s) }
