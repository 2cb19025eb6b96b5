// Package reference holds the static component descriptor library consulted
// to enrich peer responses: per-component inputs, outputs, settings and usage
// notes, recommended connection pairings, data type compatibility and canvas
// tips. The library is frozen at process start and never mutated.
package reference
