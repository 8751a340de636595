package service

import (
	"math/rand/v2"

	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
)

// assemble deduplicates by canonical id (first occurrence wins), shuffles,
// and applies the caller's limit. The shuffle breaks the upstream-imposed
// ordering (proximity or insertion order) so repeated calls give the
// caller a fresh spin; ownership of the slice passes to this function.
func assemble(records []poi.Record, limit int) []poi.Record {
	if records == nil {
		// Zero usable results still serializes as an empty array.
		return []poi.Record{}
	}

	records = dedupe(records)
	shuffle(records)

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}

func dedupe(records []poi.Record) []poi.Record {
	seen := make(map[string]bool, len(records))
	out := records[:0]
	for _, record := range records {
		if seen[record.ID] {
			continue
		}
		seen[record.ID] = true
		out = append(out, record)
	}
	return out
}

// shuffle is an unbiased Fisher–Yates pass: for each index from the last
// down to 1, swap with a uniformly chosen index in [0, i].
func shuffle(records []poi.Record) {
	for i := len(records) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		records[i], records[j] = records[j], records[i]
	}
}
