package model

// Parameter is one entry of a calibrated model's parameter table.
// Vary marks a free (calibrated) parameter; fixed parameters carry
// Vary == false and do not count towards degrees of freedom.
type Parameter struct {
	Value float64
	Vary  bool
}

// ParameterTable maps parameter names to their calibrated state
type ParameterTable map[string]Parameter

// NFree counts the free parameters, the count used by the
// degrees-of-freedom-sensitive statistics (rsq_adj, aic, bic).
func (pt ParameterTable) NFree() int {
	n := 0
	for _, p := range pt {
		if p.Vary {
			n++
		}
	}
	return n
}
