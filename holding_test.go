package planner

import "testing"

func TestPortfolio_TotalValue(t *testing.T) {
	p := NewPortfolio("USD")

	if !p.TotalValue().IsZero() {
		t.Error("TotalValue() of an empty portfolio should be zero")
	}

	if err := p.Add(Holding{Ticker: "AAPL", Quantity: Q(10), Price: M(150.5, "USD")}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := p.Add(Holding{Ticker: "BND", Quantity: Q(2), Price: M(100, "USD")}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	want := M(1705, "USD") // 10*150.5 + 2*100
	if got := p.TotalValue(); !got.Equal(want) {
		t.Errorf("TotalValue() = %v, want %v", got, want)
	}
}

func TestPortfolio_AddRejectsInvalidHoldings(t *testing.T) {
	p := NewPortfolio("USD")

	if err := p.Add(Holding{Ticker: "", Quantity: Q(1), Price: M(1, "USD")}); err == nil {
		t.Error("Add() accepted a holding without a ticker")
	}
	if err := p.Add(Holding{Ticker: "X", Quantity: Q(-1), Price: M(1, "USD")}); err == nil {
		t.Error("Add() accepted a negative quantity")
	}
	if err := p.Add(Holding{Ticker: "X", Quantity: Q(1), Price: M(-1, "USD")}); err == nil {
		t.Error("Add() accepted a negative price")
	}
	if len(p.Holdings()) != 0 {
		t.Errorf("invalid holdings were stored: %v", p.Holdings())
	}
}

func TestPortfolio_UpdateAndRemove(t *testing.T) {
	p := NewPortfolio("USD")
	for _, ticker := range []string{"A", "B", "C"} {
		if err := p.Add(Holding{Ticker: ticker, Quantity: Q(1), Price: M(10, "USD")}); err != nil {
			t.Fatalf("Add(%s) error = %v", ticker, err)
		}
	}

	if err := p.Update(1, Holding{Ticker: "B", Quantity: Q(5), Price: M(20, "USD")}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := p.Holdings()[1].Value(); !got.Equal(M(100, "USD")) {
		t.Errorf("updated value = %v, want $100.00", got)
	}

	if err := p.Update(3, Holding{Ticker: "D", Quantity: Q(1), Price: M(1, "USD")}); err == nil {
		t.Error("Update() accepted an out-of-range position")
	}

	if err := p.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	holdings := p.Holdings()
	if len(holdings) != 2 || holdings[0].Ticker != "B" || holdings[1].Ticker != "C" {
		t.Errorf("holdings after remove = %v, want [B C] in order", holdings)
	}

	if err := p.Remove(5); err == nil {
		t.Error("Remove() accepted an out-of-range position")
	}
}

func TestPortfolio_Find(t *testing.T) {
	p := NewPortfolio("USD")
	_ = p.Add(Holding{Ticker: "AAPL", Quantity: Q(1), Price: M(1, "USD")})
	_ = p.Add(Holding{Ticker: "GOOG", Quantity: Q(1), Price: M(1, "USD")})

	if got := p.Find("GOOG"); got != 1 {
		t.Errorf("Find(GOOG) = %d, want 1", got)
	}
	if got := p.Find("TSLA"); got != -1 {
		t.Errorf("Find(TSLA) = %d, want -1", got)
	}
}

func TestPortfolio_Strategies(t *testing.T) {
	p := NewPortfolio("USD")

	if err := p.AddStrategy(ContributionStrategy{Name: "", Monthly: 100, Rate: 5}); err == nil {
		t.Error("AddStrategy() accepted an unnamed strategy")
	}
	if err := p.AddStrategy(ContributionStrategy{Name: "etf", Monthly: 100, Rate: 5}); err != nil {
		t.Fatalf("AddStrategy() error = %v", err)
	}
	if err := p.AddStrategy(ContributionStrategy{Name: "cash", Monthly: 50, Rate: 1}); err != nil {
		t.Fatalf("AddStrategy() error = %v", err)
	}

	if err := p.RemoveStrategy("bonds"); err == nil {
		t.Error("RemoveStrategy() accepted an unknown name")
	}
	if err := p.RemoveStrategy("etf"); err != nil {
		t.Fatalf("RemoveStrategy() error = %v", err)
	}
	strategies := p.Strategies()
	if len(strategies) != 1 || strategies[0].Name != "cash" {
		t.Errorf("strategies = %v, want [cash]", strategies)
	}
}
