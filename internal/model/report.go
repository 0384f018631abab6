package model

// HashResult is the outcome of hashing one candidate. Exactly one of Digest
// and Err is meaningful.
type HashResult struct {
	Candidate Candidate
	Digest    string
	Err       error
}

// DuplicateSet is one original file plus the files sharing its digest.
// Duplicates preserve the relative scan order of the non-original members.
type DuplicateSet struct {
	Original   Candidate
	Duplicates []Candidate
}

// WastedBytes returns the bytes reclaimable by deleting every duplicate in
// the set.
func (s DuplicateSet) WastedBytes() uint64 {
	var total uint64
	for _, d := range s.Duplicates {
		total += d.Size
	}

	return total
}

// DuplicateReport is the full ordered result of one scan invocation, ordered
// by the scan position of each set's original.
type DuplicateReport struct {
	Sets []DuplicateSet
}

// Empty reports whether the scan found no duplicates at all.
func (r DuplicateReport) Empty() bool {
	return len(r.Sets) == 0
}

// ReclaimableBytes returns the total bytes reclaimable across all sets.
func (r DuplicateReport) ReclaimableBytes() uint64 {
	var total uint64
	for _, s := range r.Sets {
		total += s.WastedBytes()
	}

	return total
}
