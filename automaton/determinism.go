// File: determinism.go
// Role: the lazily-recomputed determinism cache (spec I5, §4.3). Existence
// rationale: determinism is queried by nearly every transform, and
// rechecking it from scratch on every edge mutation would be quadratic in
// aggregate over a batch of edits.
package automaton

// IsDeterministic reports whether the automaton currently has no
// epsilon-out-edges and no two out-edges from the same state sharing a
// label. The cached value is trusted unless dirty, in which case a full
// O(states+edges) rescan runs once and the cache is cleared.
func (a *Automaton) IsDeterministic() bool {
	if !a.dirty {
		return a.deterministic
	}

	a.deterministic = true
	for _, id := range a.states {
		seen := make(map[rune]struct{}, len(a.edges[id]))
		for _, e := range a.edges[id] {
			if !e.Has {
				a.deterministic = false
				break
			}
			if _, dup := seen[e.Label]; dup {
				a.deterministic = false
				break
			}
			seen[e.Label] = struct{}{}
		}
		if !a.deterministic {
			break
		}
	}
	a.dirty = false
	return a.deterministic
}

// markDeterministic is used by transforms (determinize.Determinize,
// minimize.Minimize) that rebuild the state graph wholesale and know the
// result's determinism without a rescan.
func (a *Automaton) markDeterministic(v bool) {
	a.deterministic = v
	a.dirty = false
}
