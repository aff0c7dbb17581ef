// Package finsight implements the core of a personal-finance tracker: the
// record collections (transactions, investments, debts) and the pure
// metrics engine that derives statistics from them (period stats, category
// breakdowns, portfolio valuation, debt payoff estimates, net worth and
// cash-flow projections).
//
// All metric functions are deterministic, side-effect free and total:
// empty collections and zero denominators yield neutral defaults, never
// errors. Persistence, HTTP and AI-advisory concerns live in the store,
// server and advisor subpackages.
package finsight
