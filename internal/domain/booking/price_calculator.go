package booking

type PriceCalculator interface {
	Calculate(basePerNight Money, stay Stay, promo PromoCode) Money
}

type DefaultPriceCalculator struct {
	PromoPercentOff int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		PromoPercentOff: 10, // any promo code is a flat 10% off
	}
}

func (pc *DefaultPriceCalculator) Calculate(basePerNight Money, stay Stay, promo PromoCode) Money {
	total := basePerNight.Times(stay.Nights())
	if promo.IsPresent() {
		total = total.ApplyPercentOff(pc.PromoPercentOff)
	}
	return total
}
