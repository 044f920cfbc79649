package internal

// DetectPressure reports whether any opponent of seat is down to threshold
// cards or fewer. cardsLeft is indexed by seat.
func DetectPressure(cardsLeft []int, seat int, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	for i, n := range cardsLeft {
		if i == seat {
			continue
		}
		if n <= threshold {
			return true
		}
	}
	return false
}
