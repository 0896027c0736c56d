// Package trace builds tap callbacks that write the tapped value to a
// logger. A *slog.Logger satisfies Logger; WithLogger stores one in a
// context so chains can pick it up.
package trace
