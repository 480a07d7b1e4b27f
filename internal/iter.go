// Package internal holds iterator helpers shared by the nade packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// IterSeqRange yields the values from first to last, inclusive.
func IterSeqRange[T ~int | ~int16](first, last T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := first; val <= last; val++ {
			if !yield(val) {
				return
			}
		}
	}
}

// IterSeq2Map maps each value of a sequence to a key and value pair.
func IterSeq2Map[T any, K any, V any](seq iter.Seq[T], fn func(T) (K, V)) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}
