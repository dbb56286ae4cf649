package model

// Scorecard holds one player's entered cells. A missing key means Unset.
type Scorecard map[Category]ScoreCell

// Get returns the cell for a category, or Unset
func (s Scorecard) Get(c Category) ScoreCell {
	if s == nil {
		return Unset
	}
	return s[c]
}

// Put stores a cell; storing Unset removes the entry
func (s Scorecard) Put(c Category, cell ScoreCell) {
	if !cell.Set {
		delete(s, c)
		return
	}
	s[c] = cell
}

// Total sums every set cell
func (s Scorecard) Total() int {
	total := 0
	for _, cell := range s {
		total += cell.Points()
	}
	return total
}
