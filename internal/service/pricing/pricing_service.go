package pricing

import "sort"

// Policy maps season names to price multipliers. Seasons the policy does not
// know leave the base price unchanged.
type Policy struct {
	multipliers map[string]float64
}

// NewPolicy copies seed so later config mutation cannot reach the policy.
func NewPolicy(seed map[string]float64) *Policy {
	multipliers := make(map[string]float64, len(seed))
	for season, m := range seed {
		multipliers[season] = m
	}
	return &Policy{multipliers: multipliers}
}

// SetMultiplier inserts or overwrites the entry for season. The multiplier is
// not validated; the operator is trusted.
func (p *Policy) SetMultiplier(season string, multiplier float64) {
	p.multipliers[season] = multiplier
}

// Price returns basePrice scaled by the season's multiplier, or basePrice
// unchanged for an unknown season. Never fails.
func (p *Policy) Price(season string, basePrice float64) float64 {
	if m, ok := p.multipliers[season]; ok {
		return basePrice * m
	}
	return basePrice
}

// Seasons returns the known season names, sorted for display.
func (p *Policy) Seasons() []string {
	seasons := make([]string, 0, len(p.multipliers))
	for season := range p.multipliers {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)
	return seasons
}
