package catalog

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/norcoast-labs/rtz-to-catalog/resolve"
)

// IdentityKey derives the fixed-width content identity digest for a route.
// The four semantic fields are case/diacritic-normalized, sorted and
// de-duplicated before hashing, so field order never influences the key.
func IdentityKey(origin, destination, region, name string) string {
	fields := []string{
		resolve.Fold(origin),
		resolve.Fold(destination),
		resolve.Fold(region),
		resolve.Fold(name),
	}
	sort.Strings(fields)

	h := xxhash.New()
	prev := ""
	for i, f := range fields {
		if i > 0 && f == prev {
			continue
		}
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0})
		prev = f
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Deduplicate keeps the first route per identity key in input order and
// returns a DropRecord for every later collision.
func Deduplicate(routes []Route) ([]Route, []DropRecord) {
	kept := make([]Route, 0, len(routes))
	var drops []DropRecord
	firstSeen := map[string]string{} // identity key -> source file of the kept route

	for _, r := range routes {
		if original, ok := firstSeen[r.IdentityKey]; ok {
			drops = append(drops, DropRecord{
				SourceFile: r.SourceFile,
				Region:     r.Region,
				Reason:     DropDuplicateRoute,
				Detail:     fmt.Sprintf("duplicate of %s", original),
				Key:        r.IdentityKey,
			})
			continue
		}
		firstSeen[r.IdentityKey] = r.SourceFile
		kept = append(kept, r)
	}
	return kept, drops
}
