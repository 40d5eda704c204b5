// Package search implements the in-memory filtering used by the portal
// listing pages. Predicates are pure and combine with logical AND, and
// filtering preserves the order of the input slice so results stay as
// deterministic as the repository ordering that produced them.
package search

import "strings"

// Predicate reports whether an item should be kept.
type Predicate[T any] func(T) bool

// Apply returns the items matching all predicates, in input order.
// A nil predicate imposes no constraint.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether sub occurs in s, case-insensitively.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// TextMatch builds a predicate matching query as a case-insensitive
// substring of any of the strings extracted from an item. An empty query
// yields nil, meaning no constraint.
func TextMatch[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields(item) {
			if ContainsFold(field, query) {
				return true
			}
		}
		return false
	}
}

// Equals builds an exact-match predicate on a single extracted value.
// An empty wanted value yields nil, meaning no constraint.
func Equals[T any](wanted string, field func(T) string) Predicate[T] {
	if wanted == "" {
		return nil
	}
	return func(item T) bool {
		return field(item) == wanted
	}
}
