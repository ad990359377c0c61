// Package planner provides the numeric core of a retirement planning tool
// built around the Guyton-Klinger dynamic withdrawal strategy.
//
// The core functionalities include:
//   - Portfolio Valuation: summing an ordered collection of holdings into a
//     single current market value.
//   - Compound Growth Projection: advancing that value month by month under
//     independently parameterized contribution strategies, producing one
//     snapshot per year.
//   - Guardrail Withdrawal Simulation: simulating a single post-retirement
//     withdrawal path under stochastic annual returns, with withdrawals
//     adjusted by the Guyton-Klinger guardrail rule.
//   - Monte Carlo Orchestration: running many independent simulations and
//     aggregating success rate, median, best and worst outcomes.
//   - Data Persistence: encoding and decoding the portfolio to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `dws` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package planner
