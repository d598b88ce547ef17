package ibconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

var (
	ErrNotFound  = errors.New("broker symbol not found")
	ErrAmbiguous = errors.New("broker symbol is ambiguous")
)

// NotFoundError is returned when no instrument is configured for the broker symbol.
type NotFoundError struct {
	Symbol        Symbol
	ConfigMissing bool
}

func (e *NotFoundError) Error() string {
	if e.ConfigMissing {
		return fmt.Sprintf("Broker symbol %s not found as IB configuration file missing!", e.Symbol)
	}
	return fmt.Sprintf("Broker symbol %s not found in configuration file!", e.Symbol)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound //nolint:errorlint
}

// AmbiguityError is returned when several instruments share the broker symbol
// and there is no rule to choose between them.
type AmbiguityError struct {
	Symbol     Symbol
	Candidates []instruments.Code
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("Broker symbol %s appears more than once in configuration file and NOT AEX!! (%s)",
		e.Symbol, strings.Join(codesToStrings(e.Candidates), ", "))
}

func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguous //nolint:errorlint
}
