// Package commands defines the decround CLI.
//
// Commands
//
//   - mul    Multiply two decimals and round the product
//   - add    Add two decimals and round the sum
//   - sub    Subtract two decimals and round the difference
//   - quo    Divide two decimals and round the quotient
//   - modes  List rounding modes
//
// # Configuration
//
// The rounding mode is taken from the --mode flag, then from the DECROUND_MODE
// environment variable, and defaults to half-even.
// The root command installs it as the process-wide default before any
// subcommand runs.
package commands
