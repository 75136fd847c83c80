package webstring

// Match is the score of one candidate against a reference value.
type Match struct {
	// Index is the candidate's position in the input.
	Index int
	Value string
	Score float64
}
