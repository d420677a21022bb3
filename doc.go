// Package nextfinance provides the logic behind the NextFinance mock
// dashboard: a portfolio overview, a watchlist of stocks with simulated
// prices, a news sidebar and a trade ticket. No real market data is used and
// no order is ever executed.
//
// The core functionalities include:
//   - Series generation: a random walk simulating a price path for charts.
//   - Chart projection: mapping a series into a 100x100 percentage viewport.
//   - Selection: the search query, selected stock and loading state of a
//     dashboard, and the stock filter derived from them.
//   - Trading: a trade ticket that validates the share amount and logs a
//     simulated transaction.
//   - Seed data: the immutable mock data every Session starts from.
//
// This package serves as the foundational logic for the `nf` command-line
// tool and its HTTP API.
package nextfinance
