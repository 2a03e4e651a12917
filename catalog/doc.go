// Package catalog holds the route catalog model, the semantic deduplication
// engine and the per-region catalog builder.
//
// Deduplication is keyed on a content-derived identity digest over the
// normalized {origin, destination, region, route name} set, so duplicate
// submissions collapse regardless of which archive or extraction pass
// produced them. Every route entering the fan-in ends up either in exactly
// one RegionCatalog or in exactly one DropRecord; nothing is lost silently.
package catalog
