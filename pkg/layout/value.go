package layout

// Unit selects how a Value's Amount is read.
type Unit uint8

const (
	UnitAuto    Unit = iota // sized by content or flex
	UnitFixed               // absolute cell count
	UnitPercent             // share of the parent's available space
)

// Value is one dimension of a style: a cell count, a percentage, or auto.
// The zero Value is auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value left for the layout pass to determine.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value of n cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value taking p percent of the available space,
// on a 0-100 scale.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsAuto reports whether the layout pass must determine this dimension.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve converts the value to cells against the available space.
// Auto resolves to fallback; percentages truncate toward zero.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}
