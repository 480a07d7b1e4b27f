package cpu

import (
	"iter"
)

// Source records where a Rom line came from.
type Source struct {
	LineNo int      // Source text line number.
	Words  []string // Words of the instruction, labels removed.
}

// Listing maps the lines of an assembled Rom back to their source text.
type Listing struct {
	Sources []Source
}

// Debug returns the source of a program line, or a zero Source if unknown.
func (lst *Listing) Debug(pc int16) (src Source) {
	if lst == nil || pc < 0 || int(pc) >= len(lst.Sources) {
		return
	}

	return lst.Sources[pc]
}

// All iterates over the program line numbers and their sources.
func (lst *Listing) All() iter.Seq2[int16, Source] {
	return func(yield func(pc int16, src Source) bool) {
		if lst == nil {
			return
		}
		for n, src := range lst.Sources {
			if !yield(int16(n), src) {
				return
			}
		}
	}
}
