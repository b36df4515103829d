package collection

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The ordering rules return a new slice and never mutate their input, so a
// view can be re-sorted any number of times with identical results. The
// insertion order (added_at DESC) is the persistence-layer default and needs
// no comparator here.

// SortGamesByTitle orders entries ascending by title, case-insensitively and
// locale-aware. Ties keep their original relative order.
func SortGamesByTitle(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	// A collator is not safe for concurrent use, so build one per call.
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

// SortGamesByDatePlayed orders entries most recently played first. Entries
// without a played date sort strictly after all dated entries, keeping their
// relative order among themselves.
func SortGamesByDatePlayed(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlayedAt, out[j].PlayedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return out
}
