package core

// PairSum returns the sum of f(rows[i], rows[j]) over every ordered pair (i, j),
// including i == j. Rows are visited in order, so the result is the same on every call.
func PairSum(rows [][]float64, f func(a, b []float64) float64) float64 {
	sum := 0.0
	for i := range rows {
		local := 0.0
		for j := range rows {
			local += f(rows[i], rows[j])
		}
		sum += local
	}
	return sum
}
