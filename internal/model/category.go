package model

import "strings"

// Category is one of the 13 fixed scoring slots on a Yahtzee scorecard
type Category string

const (
	CategoryAces          Category = "aces"
	CategoryTwos          Category = "twos"
	CategoryThrees        Category = "threes"
	CategoryFours         Category = "fours"
	CategoryFives         Category = "fives"
	CategorySixes         Category = "sixes"
	CategoryThreeOfAKind  Category = "three_of_a_kind"
	CategoryFourOfAKind   Category = "four_of_a_kind"
	CategoryFullHouse     Category = "full_house"
	CategorySmallStraight Category = "small_straight"
	CategoryLargeStraight Category = "large_straight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// Section groups categories into the upper and lower halves of the card
type Section string

const (
	SectionUpper Section = "upper"
	SectionLower Section = "lower"
)

// categoryOrder is the display order of the scorecard
var categoryOrder = []Category{
	CategoryAces,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryThreeOfAKind,
	CategoryFourOfAKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYahtzee,
	CategoryChance,
}

var categoryNames = map[Category]string{
	CategoryAces:          "Aces",
	CategoryTwos:          "Twos",
	CategoryThrees:        "Threes",
	CategoryFours:         "Fours",
	CategoryFives:         "Fives",
	CategorySixes:         "Sixes",
	CategoryThreeOfAKind:  "Three of a Kind",
	CategoryFourOfAKind:   "Four of a Kind",
	CategoryFullHouse:     "Full House",
	CategorySmallStraight: "Small Straight",
	CategoryLargeStraight: "Large Straight",
	CategoryYahtzee:       "Yahtzee",
	CategoryChance:        "Chance",
}

// Categories returns all categories in display order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human-readable label, e.g. "Full House"
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Section returns which half of the scorecard the category belongs to
func (c Category) Section() Section {
	switch c {
	case CategoryAces, CategoryTwos, CategoryThrees, CategoryFours, CategoryFives, CategorySixes:
		return SectionUpper
	default:
		return SectionLower
	}
}

// ParseCategory resolves a slug ("full_house") or display name ("Full House"),
// ignoring case and surrounding whitespace
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range categoryOrder {
		if needle == string(c) || needle == strings.ToLower(categoryNames[c]) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}
