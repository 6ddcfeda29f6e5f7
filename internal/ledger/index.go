package ledger

import (
	"sort"

	"ssshep/expensepro/internal/models"
)

// UniqueValues holds the distinct customers and purposes present in a
// transaction list, sorted ascending. Comparison is case-sensitive.
type UniqueValues struct {
	Customers []string
	Purposes  []string
}

// IndexUniqueValues builds the filter vocabularies for a transaction list.
func IndexUniqueValues(transactions []models.Transaction) UniqueValues {
	customers := make(map[string]struct{})
	purposes := make(map[string]struct{})
	for _, tx := range transactions {
		customers[tx.CustomerName] = struct{}{}
		purposes[tx.Purpose] = struct{}{}
	}
	return UniqueValues{
		Customers: sortedKeys(customers),
		Purposes:  sortedKeys(purposes),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeVocabulary returns base plus any non-empty additions, deduplicated
// and sorted. base is not modified.
func MergeVocabulary(base []string, additions ...string) []string {
	set := make(map[string]struct{}, len(base)+len(additions))
	for _, v := range base {
		set[v] = struct{}{}
	}
	for _, v := range additions {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return sortedKeys(set)
}
