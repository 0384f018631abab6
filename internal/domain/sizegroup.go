package domain

import m "github.com/aryanadla/twinTrim/internal/model"

// GroupBySize buckets candidates by exact byte size and drops every bucket
// with a single member: a file whose size collides with nothing cannot have a
// duplicate, so it never needs to be hashed. Buckets come back in
// first-encountered order and members keep their scan order.
func GroupBySize(candidates []m.Candidate) [][]m.Candidate {
	bucketIndex := make(map[uint64]int, len(candidates))

	var buckets [][]m.Candidate

	for _, c := range candidates {
		i, ok := bucketIndex[c.Size]
		if !ok {
			i = len(buckets)
			bucketIndex[c.Size] = i
			buckets = append(buckets, nil)
		}

		buckets[i] = append(buckets[i], c)
	}

	survivors := buckets[:0]
	for _, bucket := range buckets {
		if len(bucket) >= 2 {
			survivors = append(survivors, bucket)
		}
	}

	return survivors
}
