package domain

import (
	"sort"

	m "github.com/aryanadla/twinTrim/internal/model"
)

// digestKey identifies one content group. Digest equality already implies
// size equality for a correct hash; keying on both keeps groups from
// different size buckets apart regardless.
type digestKey struct {
	size   uint64
	digest string
}

// GroupDuplicates folds successful hash results into duplicate sets. Results
// may arrive in any completion order: members are re-sorted by scan position,
// the earliest becomes the original and the report is ordered by each
// original's scan position, so the output is deterministic for a fixed tree.
// Failed results are ignored; the caller has already recorded them.
func GroupDuplicates(results []m.HashResult) m.DuplicateReport {
	groups := make(map[digestKey][]m.Candidate)

	for _, r := range results {
		if r.Err != nil {
			continue
		}

		key := digestKey{size: r.Candidate.Size, digest: r.Digest}
		groups[key] = append(groups[key], r.Candidate)
	}

	var sets []m.DuplicateSet

	for _, members := range groups {
		if len(members) < 2 {
			continue
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].Index < members[j].Index
		})

		sets = append(sets, m.DuplicateSet{
			Original:   members[0],
			Duplicates: members[1:],
		})
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Original.Index < sets[j].Original.Index
	})

	return m.DuplicateReport{Sets: sets}
}
