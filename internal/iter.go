// Package internal holds iterator helpers shared by the IC10 packages.
package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeq2Skip drops the pairs whose key satisfies skip.
func IterSeq2Skip[K any, V any](seq iter.Seq2[K, V], skip func(K) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range seq {
			if skip(key) {
				continue
			}
			if !yield(key, val) {
				return
			}
		}
	}
}

// IterSorted iterates a map in ascending key order.
func IterSorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
