package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// ScoreCell is the value entered for one (player, category) pair.
// The zero value is Unset.
type ScoreCell struct {
	Value int
	Set   bool
}

// Unset is the cell value for "nothing entered"
var Unset = ScoreCell{}

// NewScore returns a set cell holding v
func NewScore(v int) ScoreCell {
	return ScoreCell{Value: v, Set: true}
}

// Points returns the cell's contribution to a total (0 when unset)
func (c ScoreCell) Points() int {
	if !c.Set {
		return 0
	}
	return c.Value
}

// String renders the value for display; unset cells render as ""
func (c ScoreCell) String() string {
	if !c.Set {
		return ""
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON encodes unset cells as null and set cells as a bare number
func (c ScoreCell) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON
func (c *ScoreCell) UnmarshalJSON(data []byte) error {
	var v *int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*c = Unset
		return nil
	}
	*c = NewScore(*v)
	return nil
}

// ParseScoreInput leniently parses raw user input into a cell.
//
// Leading whitespace (any Unicode space, or a BOM) and an optional sign are accepted, then the longest run
// of decimal digits is used and anything after it is ignored ("12abc" is 12,
// "3.7" is 3). Input with no leading digits, or a number too large for int,
// normalizes to Unset. It never fails.
func ParseScoreInput(raw string) ScoreCell {
	s := strings.TrimLeftFunc(raw, isLeadingSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return Unset
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return Unset
	}
	return NewScore(v)
}

func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
