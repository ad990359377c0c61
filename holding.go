package planner

import "fmt"

// Holding represents a position in the portfolio: a ticker, the number of
// units held, and the last known unit price.
type Holding struct {
	Ticker   string
	Quantity Quantity
	Price    Money
}

// Value returns the current market value of the holding.
func (h Holding) Value() Money { return h.Price.Mul(h.Quantity) }

// Portfolio is an ordered collection of holdings plus the contribution
// strategies used when projecting its growth.
type Portfolio struct {
	currency   string
	holdings   []Holding
	strategies []ContributionStrategy
}

// NewPortfolio returns an empty portfolio reporting in the given currency.
func NewPortfolio(currency string) *Portfolio {
	return &Portfolio{currency: currency}
}

// Currency returns the portfolio's reporting currency.
func (p *Portfolio) Currency() string { return p.currency }

// Holdings returns the ordered list of holdings.
func (p *Portfolio) Holdings() []Holding { return p.holdings }

// Strategies returns the ordered list of contribution strategies.
func (p *Portfolio) Strategies() []ContributionStrategy { return p.strategies }

func (p *Portfolio) checkHolding(h Holding) error {
	if h.Ticker == "" {
		return fmt.Errorf("holding has no ticker")
	}
	if h.Quantity.IsNegative() {
		return fmt.Errorf("holding %q has a negative quantity %s", h.Ticker, h.Quantity)
	}
	if h.Price.IsNegative() {
		return fmt.Errorf("holding %q has a negative price %s", h.Ticker, h.Price)
	}
	return nil
}

// Add appends a holding to the portfolio.
func (p *Portfolio) Add(h Holding) error {
	if err := p.checkHolding(h); err != nil {
		return err
	}
	p.holdings = append(p.holdings, h)
	return nil
}

// Update replaces the holding at position i.
func (p *Portfolio) Update(i int, h Holding) error {
	if i < 0 || i >= len(p.holdings) {
		return fmt.Errorf("no holding at position %d", i)
	}
	if err := p.checkHolding(h); err != nil {
		return err
	}
	p.holdings[i] = h
	return nil
}

// Remove deletes the holding at position i, preserving order.
func (p *Portfolio) Remove(i int) error {
	if i < 0 || i >= len(p.holdings) {
		return fmt.Errorf("no holding at position %d", i)
	}
	p.holdings = append(p.holdings[:i], p.holdings[i+1:]...)
	return nil
}

// Find returns the position of the first holding with the given ticker,
// or -1 if there is none.
func (p *Portfolio) Find(ticker string) int {
	for i, h := range p.holdings {
		if h.Ticker == ticker {
			return i
		}
	}
	return -1
}

// AddStrategy appends a contribution strategy.
func (p *Portfolio) AddStrategy(s ContributionStrategy) error {
	if s.Name == "" {
		return fmt.Errorf("strategy has no name")
	}
	p.strategies = append(p.strategies, s)
	return nil
}

// RemoveStrategy deletes the first strategy with the given name,
// preserving order.
func (p *Portfolio) RemoveStrategy(name string) error {
	for i, s := range p.strategies {
		if s.Name == name {
			p.strategies = append(p.strategies[:i], p.strategies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no strategy named %q", name)
}

// TotalValue returns the sum of quantity times price over all holdings.
// An empty portfolio is worth zero.
func (p *Portfolio) TotalValue() Money {
	total := M(0, p.currency)
	for _, h := range p.holdings {
		total = total.Add(h.Value())
	}
	return total
}
