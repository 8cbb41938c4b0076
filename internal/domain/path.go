package domain

// PathPoint is a single vertex of a timeline path in logical (hour, lane)
// coordinate space. Mapping to pixels is owned by the rendering collaborator.
type PathPoint struct {
	Hour float64
	Lane int
}

// TimelinePath is an ordered vertex sequence describing a single polyline
// that traces the driver's status through a day: vertical segments at status
// transitions, horizontal segments during sustained status. Pure, recomputable
// view data with no ownership beyond the call that produced it.
type TimelinePath []PathPoint
