package landing

// FilterAll is the filter category which matches every card.
const FilterAll = "all"

// Matches reports whether a card of cardCategory is shown under filter.
func Matches(filter, cardCategory string) bool {
	return filter == FilterAll || filter == cardCategory
}

// FilterCards returns the visibility of each card category under filter.
func FilterCards(filter string, categories []string) []bool {
	visible := make([]bool, len(categories))
	for i, c := range categories {
		visible[i] = Matches(filter, c)
	}
	return visible
}
