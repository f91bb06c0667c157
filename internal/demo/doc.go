// Package demo wires the three greedy solvers to configured or generated
// inputs and renders their results as aligned text reports: coin tables,
// knapsack selections, activity listings with a timeline. Every report can
// re-check the solver's output and print a verification marker; that check is
// diagnostic only. Random data comes from a seeded generator so runs are
// reproducible.
package demo
