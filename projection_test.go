package planner

import (
	"math"
	"testing"
)

func TestProject_HorizonZero(t *testing.T) {
	snapshots := Project(1234.56, ProjectionParameters{Years: 0})

	if len(snapshots) != 1 {
		t.Fatalf("Project() returned %d snapshots, want 1", len(snapshots))
	}
	got := snapshots[0]
	want := YearlySnapshot{Year: 0, Principal: 1235, Growth: 0, Total: 1235}
	if got != want {
		t.Errorf("Project()[0] = %+v, want %+v", got, want)
	}
}

func TestProject_FlatWhenRatesAndContributionsAreZero(t *testing.T) {
	p := ProjectionParameters{
		InitialRate: 0,
		Years:       10,
		Strategies:  []ContributionStrategy{{Name: "idle", Monthly: 0, Rate: 0}},
	}
	snapshots := Project(50000, p)

	if len(snapshots) != 11 {
		t.Fatalf("Project() returned %d snapshots, want 11", len(snapshots))
	}
	for _, s := range snapshots {
		if s.Total != 50000 {
			t.Errorf("year %d: total = %v, want 50000", s.Year, s.Total)
		}
		if s.Growth != 0 {
			t.Errorf("year %d: growth = %v, want 0", s.Year, s.Growth)
		}
	}
}

func TestProject_PrincipalIsReturnIndependent(t *testing.T) {
	strategies := []ContributionStrategy{
		{Name: "stocks", Monthly: 100, Rate: 12},
		{Name: "bonds", Monthly: 50, Rate: -6},
	}
	p := ProjectionParameters{InitialRate: 8, Years: 5, Strategies: strategies}
	snapshots := Project(5000, p)

	// Principal must be the starting value plus every contribution made so
	// far, whatever the rates do.
	for _, s := range snapshots {
		want := 5000 + float64(s.Year)*12*150
		if s.Principal != want {
			t.Errorf("year %d: principal = %v, want %v", s.Year, s.Principal, want)
		}
	}
}

func TestProject_GrowthIdentity(t *testing.T) {
	p := ProjectionParameters{
		InitialRate: 7.3,
		Years:       15,
		Strategies: []ContributionStrategy{
			{Name: "a", Monthly: 123.45, Rate: 9.9},
			{Name: "b", Monthly: 0, Rate: 4},
			{Name: "c", Monthly: 808, Rate: -2.5},
		},
	}
	for _, s := range Project(98765.43, p) {
		if s.Growth != s.Total-s.Principal {
			t.Errorf("year %d: growth = %v, want total-principal = %v", s.Year, s.Growth, s.Total-s.Principal)
		}
	}
}

func TestProject_SingleStrategyCompounding(t *testing.T) {
	// One strategy, no starting value: after one year the balance is the
	// monthly annuity-due sum 100*1.01*(1.01^12-1)/0.01.
	p := ProjectionParameters{
		Years:      1,
		Strategies: []ContributionStrategy{{Name: "fund", Monthly: 100, Rate: 12}},
	}
	snapshots := Project(0, p)

	want := math.Round(100 * 1.01 * (math.Pow(1.01, 12) - 1) / 0.01)
	if got := snapshots[1].Total; got != want {
		t.Errorf("total after 1 year = %v, want %v", got, want)
	}
}

func TestProject_NegativeRateShrinks(t *testing.T) {
	p := ProjectionParameters{InitialRate: -12, Years: 3}
	snapshots := Project(1000, p)

	for year := 1; year <= 3; year++ {
		want := math.Round(1000 * math.Pow(0.99, float64(12*year)))
		if got := snapshots[year].Total; got != want {
			t.Errorf("year %d: total = %v, want %v", year, got, want)
		}
		if snapshots[year].Growth >= 0 {
			t.Errorf("year %d: growth = %v, want negative", year, snapshots[year].Growth)
		}
	}
}

func TestProject_StrategiesAreIndependent(t *testing.T) {
	s1 := ContributionStrategy{Name: "a", Monthly: 250, Rate: 10}
	s2 := ContributionStrategy{Name: "b", Monthly: 75, Rate: 3}

	both := Project(0, ProjectionParameters{Years: 8, Strategies: []ContributionStrategy{s1, s2}})
	only1 := Project(0, ProjectionParameters{Years: 8, Strategies: []ContributionStrategy{s1}})
	only2 := Project(0, ProjectionParameters{Years: 8, Strategies: []ContributionStrategy{s2}})

	for year := 0; year <= 8; year++ {
		got := both[year].Total
		want := only1[year].Total + only2[year].Total
		// rounding each total separately can differ by one unit
		if math.Abs(got-want) > 1 {
			t.Errorf("year %d: combined total = %v, sum of parts = %v", year, got, want)
		}
	}
}

func TestProject_EmptyStrategyList(t *testing.T) {
	snapshots := Project(10000, ProjectionParameters{InitialRate: 6, Years: 2})

	want := math.Round(10000 * math.Pow(1+0.06/12, 24))
	if got := snapshots[2].Total; got != want {
		t.Errorf("total after 2 years = %v, want %v", got, want)
	}
}
