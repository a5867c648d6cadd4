package token

// Pos is a 1-based source line number. A value of 0 means unknown. Unlike a
// compiler for a statically laid-out file, jl reads expressions one at a
// time from a single live stream (a REPL line, a file slurped whole), so a
// running line counter is all diagnostics ever need - no column, no
// per-file offsets.
type Pos int

// NoPos is the zero value of Pos, meaning "unknown position".
const NoPos Pos = 0

// Line returns the 1-based line number, or 0 if unknown.
func (p Pos) Line() int { return int(p) }
