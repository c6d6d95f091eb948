// Package units converts between kilograms and the mill's canonical
// quintal unit.
package units

const (
	DefaultKgPerQuintal = 100
	MinKgPerQuintal     = 1
	MaxKgPerQuintal     = 200
)

// ToQuintal returns the canonical quantity in quintals for an entry
// made in either unit. A quintal figure takes precedence over a
// kilogram figure; with neither, the result is 0. The result is fixed
// at entry time: later changes to the ratio never touch stored rows.
func ToQuintal(qtyQtl, qtyKg float64, kgPerQtl int) float64 {
	if qtyQtl > 0 {
		return qtyQtl
	}
	if qtyKg > 0 && kgPerQtl > 0 {
		return qtyKg / float64(kgPerQtl)
	}
	return 0
}

// ValidRatio reports whether v is a usable kg-per-quintal setting.
func ValidRatio(v int) bool {
	return v >= MinKgPerQuintal && v <= MaxKgPerQuintal
}
