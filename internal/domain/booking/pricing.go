package booking

type PricingCalculator interface {
	TotalDays(r DateRange) int
	TotalCost(r DateRange, nightly Money) (Money, error)
}

type DefaultPricingCalculator struct{}

func NewDefaultPricingCalculator() *DefaultPricingCalculator {
	return &DefaultPricingCalculator{}
}

func (DefaultPricingCalculator) TotalDays(r DateRange) int {
	return r.Nights()
}

func (pc DefaultPricingCalculator) TotalCost(r DateRange, nightly Money) (Money, error) {
	return nightly.Times(pc.TotalDays(r))
}
