package feed

import (
	"slices"
	"strings"
)

// Reconciler compares discovered feeds against the local lists and keeps
// the ones worth reporting.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Run returns the candidate feeds in sorted order: every URL from manual
// or discovered that is not empty, not already tracked in current, not
// listed in bad and not an http/https twin of a tracked feed. Twins are
// matched against current only, so a twin of a bad feed is still
// reported.
func (r *Reconciler) Run(current, bad, manual Set, discovered []Set) []string {
	candidates := NewSet()
	for u := range manual {
		candidates.Add(u)
	}
	for _, set := range discovered {
		for u := range set {
			candidates.Add(u)
		}
	}

	result := make([]string, 0, candidates.Len())
	for u := range candidates {
		if u == "" {
			continue
		}
		if current.Contains(u) || bad.Contains(u) {
			continue
		}
		if r.schemeTwinTracked(u, current) {
			continue
		}
		result = append(result, u)
	}

	slices.Sort(result)

	return result
}

func (r *Reconciler) schemeTwinTracked(url string, current Set) bool {
	return current.Contains(strings.ReplaceAll(url, "http:", "https:")) ||
		current.Contains(strings.ReplaceAll(url, "https:", "http:"))
}
