package ibconfig

import (
	"github.com/shopspring/decimal"

	"github.com/Antonboom/ib-instruments-config/internal/instruments"
)

var defaultPriceMagnifier = decimal.NewFromInt(1)

// ConfigData is the set of IB parameters needed to trade the instrument.
type ConfigData struct {
	Symbol         Symbol                    `json:"symbol"`
	Exchange       string                    `json:"exchange"`
	Currency       Optional[string]          `json:"currency"`
	Multiplier     Optional[decimal.Decimal] `json:"multiplier"`
	PriceMagnifier decimal.Decimal           `json:"price_magnifier"`
	IgnoreWeekly   bool                      `json:"ignore_weekly"`
}

func newConfigData(row Row) ConfigData {
	data := ConfigData{
		Symbol:         row.IBSymbol,
		Exchange:       row.IBExchange,
		Currency:       NotRequired[string](),
		Multiplier:     NotRequired[decimal.Decimal](),
		PriceMagnifier: defaultPriceMagnifier,
		IgnoreWeekly:   row.IgnoreWeekly,
	}

	if row.IBCurrency != "" {
		data.Currency = Required(row.IBCurrency)
	}
	if row.IBMultiplier.Valid {
		data.Multiplier = Required(row.IBMultiplier.Decimal)
	}
	if row.PriceMagnifier.Valid {
		data.PriceMagnifier = row.PriceMagnifier.Decimal
	}
	return data
}

// FromBrokerPrice converts the price quoted by IB into the instrument price.
func (d ConfigData) FromBrokerPrice(price decimal.Decimal) decimal.Decimal {
	return price.Mul(d.magnifier())
}

// ToBrokerPrice converts the instrument price into the price IB expects in orders.
func (d ConfigData) ToBrokerPrice(price decimal.Decimal) decimal.Decimal {
	return price.Div(d.magnifier())
}

func (d ConfigData) magnifier() decimal.Decimal {
	if !d.PriceMagnifier.IsPositive() {
		return defaultPriceMagnifier
	}
	return d.PriceMagnifier
}

// InstrumentWithConfigData is a futures instrument with IB parameters attached.
type InstrumentWithConfigData struct {
	Instrument instruments.FuturesInstrument `json:"instrument"`
	IBData     ConfigData                    `json:"ib_data"`
}

func (i InstrumentWithConfigData) InstrumentCode() instruments.Code {
	return i.Instrument.Code
}

func (i InstrumentWithConfigData) BrokerSymbol() Symbol {
	return i.IBData.Symbol
}
