package planner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the portfolio in a single JSONL file,
// human-readable and git-friendly: one line per holding, then one line per
// contribution strategy. Lines are tagged so the file stays self-describing
// when new kinds are added.

// jline is the object read from or written to the file using the json parser.
type jline struct {
	Kind     string          `json:"kind"`
	Ticker   string          `json:"ticker,omitempty"`
	Quantity decimal.Decimal `json:"quantity,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
	Name     string          `json:"name,omitempty"`
	Monthly  float64         `json:"monthly,omitempty"`
	Rate     float64         `json:"rate,omitempty"`
}

const (
	kindHolding  = "holding"
	kindStrategy = "strategy"
)

// EncodePortfolio writes the portfolio as JSONL, holdings first in order,
// then strategies in order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	for _, h := range p.Holdings() {
		line := jline{
			Kind:     kindHolding,
			Ticker:   h.Ticker,
			Quantity: h.Quantity.value,
			Price:    h.Price.value,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encoding holding %q: %w", h.Ticker, err)
		}
	}
	for _, s := range p.Strategies() {
		line := jline{
			Kind:    kindStrategy,
			Name:    s.Name,
			Monthly: s.Monthly,
			Rate:    float64(s.Rate),
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encoding strategy %q: %w", s.Name, err)
		}
	}
	return nil
}

// DecodePortfolio parses a JSONL portfolio. filename is for error messages only.
func DecodePortfolio(filename string, r io.Reader, currency string) (*Portfolio, error) {
	p := NewPortfolio(currency)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jl jline
		if err := json.Unmarshal(line, &jl); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}

		switch jl.Kind {
		case kindHolding:
			h := Holding{
				Ticker:   jl.Ticker,
				Quantity: Q(jl.Quantity),
				Price:    M(jl.Price, currency),
			}
			if err := p.Add(h); err != nil {
				return nil, fmt.Errorf("format error in %q: %w", filename, err)
			}
		case kindStrategy:
			s := ContributionStrategy{
				Name:    jl.Name,
				Monthly: jl.Monthly,
				Rate:    Percent(jl.Rate),
			}
			if err := p.AddStrategy(s); err != nil {
				return nil, fmt.Errorf("format error in %q: %w", filename, err)
			}
		default:
			return nil, fmt.Errorf("format error in %q: unknown kind %q", filename, jl.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	return p, nil
}

// LoadPortfolio reads a portfolio file from disk.
func LoadPortfolio(filename, currency string) (*Portfolio, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePortfolio(filename, f, currency)
}

// SavePortfolio writes the portfolio to disk, replacing the previous content.
func SavePortfolio(filename string, p *Portfolio) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodePortfolio(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
