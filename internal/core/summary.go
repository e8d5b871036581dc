package core

// Summary is the aggregate view of the ledger at a point in time.
// Balance always equals TotalIncome - TotalExpense.
type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}
