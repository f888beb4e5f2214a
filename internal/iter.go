// Package internal holds small helpers shared by the i8080 packages.
package internal

import (
	"iter"
)

// ConcatSeq2 yields every pair of each sequence in turn.
func ConcatSeq2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
