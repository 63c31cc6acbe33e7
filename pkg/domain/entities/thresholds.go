package entities

// StockLevel classifies a part's total quantity against the low-stock
// thresholds.
type StockLevel int

const (
	StockNormal StockLevel = iota
	StockWarn
	StockDanger
)

// String method for StockLevel enum
func (s StockLevel) String() string {
	switch s {
	case StockNormal:
		return "normal"
	case StockWarn:
		return "warn"
	case StockDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Thresholds holds the low-stock boundaries. Invariant: 0 <= Danger <= Warn.
// Adjusting either value past the other clamps the adjusted value to the
// boundary, so the invariant can never be violated.
type Thresholds struct {
	Warn   Quantity
	Danger Quantity
}

// DefaultThresholds returns the boundaries the ledger starts with.
func DefaultThresholds() Thresholds {
	return Thresholds{Warn: 100, Danger: 50}
}

// SetWarn updates the warn boundary. Values below zero clamp to zero;
// values below the danger boundary clamp up to it.
func (t *Thresholds) SetWarn(v Quantity) {
	if v < 0 {
		v = 0
	}
	if v < t.Danger {
		v = t.Danger
	}
	t.Warn = v
}

// SetDanger updates the danger boundary. Values below zero clamp to zero;
// values above the warn boundary clamp down to it.
func (t *Thresholds) SetDanger(v Quantity) {
	if v < 0 {
		v = 0
	}
	if v > t.Warn {
		v = t.Warn
	}
	t.Danger = v
}

// Classify maps a total quantity to its stock level: danger at or below the
// danger boundary, warn at or below the warn boundary, normal otherwise.
func (t Thresholds) Classify(q Quantity) StockLevel {
	if q <= t.Danger {
		return StockDanger
	}
	if q <= t.Warn {
		return StockWarn
	}
	return StockNormal
}
