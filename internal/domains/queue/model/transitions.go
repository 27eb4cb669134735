package model

var transitionMap = map[BookingStatus][]BookingStatus{
	StatusPending: {StatusCalling, StatusCancelled},
	StatusCalling: {StatusCompleted, StatusCancelled},
}

// ValidTransition reports whether a booking may move from one status to
// another. Terminal statuses have no outgoing transitions.
func ValidTransition(from, to BookingStatus) bool {
	for _, status := range transitionMap[from] {
		if status == to {
			return true
		}
	}

	return false
}
