package scoring

// Weights assigns the relative importance of each compatibility dimension.
// The table is an immutable value handed to the scorer; totals are
// normalized by the sum of the weights actually used, so re-weighting a
// dimension (or zeroing it out) needs no other change.
type Weights struct {
	Age           int
	Height        int
	Religion      int
	Caste         int
	Education     int
	Location      int
	Diet          int
	MaritalStatus int
}

// DefaultWeights returns the production weight table.
func DefaultWeights() Weights {
	return Weights{
		Age:           15,
		Height:        10,
		Religion:      20,
		Caste:         10,
		Education:     10,
		Location:      10,
		Diet:          5,
		MaritalStatus: 10,
	}
}
