package bot

import "math/rand"

// CenterOrder lists the columns center first, then alternating outward:
// center, center-1, center+1, center-2, ...
func CenterOrder(columns int) []int {
	center := columns / 2
	order := make([]int, 0, columns)
	for offset := 0; offset <= center; offset++ {
		order = append(order, center-offset)
		if offset != 0 && center+offset < columns {
			order = append(order, center+offset)
		}
	}
	return order
}

// shuffleTail shuffles everything after the first entry, so the center
// column keeps its place at the front.
func shuffleTail(order []int, rng *rand.Rand) {
	for i := 1; i < len(order); i++ {
		j := i + rng.Intn(len(order)-i)
		order[i], order[j] = order[j], order[i]
	}
}
