// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catalog reads. Battle creation bursts (tournament brackets,
// raid waves) would otherwise hit the species table once per request.
package dedupe

import "golang.org/x/sync/singleflight"

// CatalogGroup deduplicates full species-catalog loads (key "species_list").
var CatalogGroup singleflight.Group

// SpeciesGroup deduplicates per-species lookups keyed by the canonical
// species key (see internal/keys).
var SpeciesGroup singleflight.Group
