package models

// MeritTally counts the monthly merits earned per category. At most one tally
// is awarded per month, at month-end evaluation.
type MeritTally struct {
	Novato  int `json:"novato"`
	Elite   int `json:"elite"`
	Leyenda int `json:"leyenda"`
}

// Total returns the number of merits earned across all categories.
func (m MeritTally) Total() int {
	return m.Novato + m.Elite + m.Leyenda
}
