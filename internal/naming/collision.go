package naming

import "sync"

// TargetClaims tracks output paths claimed by candidate files. Candidates
// that are already at their own target are pre-registered as owners, so a
// sibling with another extension can never overwrite them. All methods are
// goroutine-safe.
type TargetClaims struct {
	mu     sync.Mutex
	owners map[string]string // target path → candidate path that owns it
}

// NewTargetClaims creates claims pre-populated with every candidate whose
// target (under outputExt) is its own path.
func NewTargetClaims(candidates []string, outputExt string) *TargetClaims {
	tc := &TargetClaims{owners: make(map[string]string)}
	for _, c := range candidates {
		if TargetPath(c, outputExt) == c {
			tc.owners[c] = c
		}
	}
	return tc
}

// Claim records candidate as the owner of target. It returns ("", true) when
// target was free or already owned by candidate, and (owner, false) when a
// different candidate holds it.
func (tc *TargetClaims) Claim(candidate, target string) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	owner, exists := tc.owners[target]
	if exists && owner != candidate {
		return owner, false
	}
	tc.owners[target] = candidate
	return "", true
}
