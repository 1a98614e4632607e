package engine

// TypeChart maps attacking move tag -> defending tag -> multiplier.
// Relations are asymmetric and not guaranteed reciprocal; anything not
// listed multiplies by 1.0.
type TypeChart map[string]map[string]float64

// Effectiveness multiplies over every defending tag the attacking tag has a
// defined relation to.
func (tc TypeChart) Effectiveness(moveType string, defenderTypes []string) float64 {
	mult := 1.0
	rels, ok := tc[moveType]
	if !ok {
		return mult
	}
	for _, dt := range defenderTypes {
		if m, ok := rels[dt]; ok {
			mult *= m
		}
	}
	return mult
}

// DefaultTypeChart is the built-in habitat chart. Config may replace it
// wholesale (`type_chart` in uppaws_config.json).
func DefaultTypeChart() TypeChart {
	return TypeChart{
		"river": {
			"desert":   2.0,
			"mountain": 0.5,
			"river":    0.5,
		},
		"desert": {
			"forest": 2.0,
			"river":  0.5,
			"desert": 0.5,
		},
		"forest": {
			"river":  2.0,
			"desert": 0.5,
			"sky":    0.5,
		},
		"sky": {
			"forest": 2.0,
			"swamp":  2.0,
			"mountain": 0.5,
		},
		"mountain": {
			"sky":   2.0,
			"swamp": 0.5,
		},
		"swamp": {
			"river":    2.0,
			"mountain": 1.5,
			"forest":   0.5,
		},
	}
}
