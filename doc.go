// Package equitywise computes Indian tax figures from equity
// compensation data: RSU vesting statements, brokerage gain/loss
// statements, historical USD/INR exchange rates, and historical stock
// prices.
//
// The core functionalities include:
//   - Holdings Resolution: reconstructing point-in-time share holdings
//     per grant by consuming sales against vesting lots in FIFO order.
//   - Market Data Lookup: resolving a usable exchange rate and stock
//     price for an arbitrary calendar date through a bounded
//     nearest-date fallback search with range clamping.
//   - Foreign Assets Balances: deriving the statutory opening, peak,
//     and closing balances over a calendar year and deciding whether
//     an FA declaration is required.
//   - RSU Taxation: classifying vest income and sale capital gains per
//     Indian financial year (April to March).
//
// The engine is a pure, single-threaded computation over in-memory
// record lists. File parsing and report writing live in thin
// collaborators around it; this package serves as the foundational
// logic for the `ew` command-line tool.
package equitywise
