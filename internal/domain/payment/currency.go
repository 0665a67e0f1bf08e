package payment

import (
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidCurrency = errors.New("currency must be a three-letter ISO code")

// Currencies whose smallest unit is the major unit; charges in these are sent without decimals.
var zeroDecimal = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

type Currency string

func NewCurrency(code string) (Currency, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", ErrInvalidCurrency
		}
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsZeroDecimal() bool {
	_, ok := zeroDecimal[strings.ToLower(string(c))]
	return ok
}

func (c Currency) Decimals() int32 {
	if c.IsZeroDecimal() {
		return 0
	}
	return 2
}

// ToMinorUnits converts an amount kept in hundredths into the processor's smallest unit.
func (c Currency) ToMinorUnits(cents int64) int64 {
	if !c.IsZeroDecimal() {
		return cents
	}
	q, r := cents/100, cents%100
	switch {
	case r > 50:
		q++
	case r == 50 && q%2 != 0:
		q++
	}
	return q
}

// Amount is a processor-reported value in minor units with the currency's scale attached.
type Amount struct {
	minor    int64
	decimals int32
}

func AmountFromMinor(minor int64, currency Currency) Amount {
	return Amount{minor: minor, decimals: currency.Decimals()}
}

func (a Amount) Minor() int64    { return a.minor }
func (a Amount) Decimals() int32 { return a.decimals }

func (a Amount) String() string {
	return new(big.Rat).SetFrac64(a.minor, pow10(a.decimals)).FloatString(int(a.decimals))
}

func pow10(n int32) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}
