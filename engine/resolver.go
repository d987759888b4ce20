package engine

import (
	"log"
	"sort"
	"strings"
)

// ============================================================================
// COLUMN RESOLVER — fuzzy column-name lookup
// ============================================================================
// Widget configs travel through UIs and export files that trim, re-case, or
// quote column names. Resolution maps a requested name back to the real
// record key. It is total: a name that matches nothing is logged and passed
// through unchanged, degrading to a missing-value lookup downstream.
// ============================================================================

// resolve maps a requested column name to the actual record key.
// Empty input is returned unchanged. Results are cached for the lifetime of
// the dataset; the cache write is idempotent, so concurrent widget calls
// need no coordination beyond sync.Map.
func (ds *Dataset) resolve(name string) string {
	if name == "" {
		return name
	}
	if cached, ok := ds.names.Load(name); ok {
		return cached.(string)
	}
	key := ds.lookupKey(name)
	ds.names.Store(name, key)
	return key
}

func (ds *Dataset) lookupKey(name string) string {
	keys := ds.candidateKeys()

	for _, k := range keys {
		if k == name {
			return k
		}
	}

	// Case and surrounding-whitespace insensitive.
	want := strings.ToLower(strings.TrimSpace(name))
	for _, k := range keys {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return k
		}
	}

	// Ignore surrounding quote characters on both sides.
	want = trimQuotes(want)
	for _, k := range keys {
		if trimQuotes(strings.ToLower(strings.TrimSpace(k))) == want {
			return k
		}
	}

	log.Printf("facet: column %q not found in dataset, using name as-is", name)
	return name
}

// candidateKeys returns the keys resolution matches against: the declared
// column order when present, otherwise the first record's keys in sorted
// order so ties resolve deterministically.
func (ds *Dataset) candidateKeys() []string {
	if len(ds.columns) > 0 {
		return ds.columns
	}
	if len(ds.records) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ds.records[0]))
	for k := range ds.records[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
