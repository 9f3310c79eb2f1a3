package booking

// CountOverlaps returns how many of the existing windows intersect q.
func CountOverlaps(existing []DateRange, q DateRange) int {
	n := 0
	for _, e := range existing {
		if e.Overlaps(q) {
			n++
		}
	}
	return n
}

// RoomsLeft is capacity minus concurrent occupancy. It may be negative when
// data was inserted around the reservation path; callers treat <= 0 as full.
func RoomsLeft(quantity, overlaps int) int {
	return quantity - overlaps
}
