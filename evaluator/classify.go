package evaluator

// Classification summarizes the result column of a table.
type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// MarshalText lets encoders write the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify reports whether the expression is true for every row, false for
// every row, or neither.
func (t *Table) Classify() Classification {
	trues := 0
	for r := range t.Rows {
		if t.Result(r) {
			trues++
		}
	}

	switch trues {
	case len(t.Rows):
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingent
	}
}
