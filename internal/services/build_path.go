package services

import "hos-log-service/internal/domain"

// PathOptions controls optional path-building behavior.
//
// FillGaps draws time not covered by any interval as an OFF segment instead
// of silently skipping it. Off by default to match the official log trace,
// where uncovered time is simply absent from the line.
type PathOptions struct {
	FillGaps bool
}

// BuildPath converts ordered duty intervals into the log-grid polyline.
//
// Every interval contributes two vertices, (start, lane) then (end, lane).
// Emitting the start vertex even when the lane is unchanged guarantees a
// vertical connector whenever consecutive intervals differ in lane, and
// degenerates to a plain horizontal continuation when they don't. Connected
// in order with right-angle joins the vertices form the stepped "staircase"
// trace of a paper log. Coordinates are logical (hour, lane) pairs; pixel
// scaling belongs to the renderer.
func BuildPath(ordered []domain.DutyInterval, opts PathOptions) domain.TimelinePath {
	if len(ordered) == 0 {
		return domain.TimelinePath{}
	}

	path := make(domain.TimelinePath, 0, 2*len(ordered))
	offLane := domain.StatusOff.Lane()

	prevEnd := ordered[0].Start
	for _, iv := range ordered {
		if opts.FillGaps && iv.Start > prevEnd {
			path = append(path,
				domain.PathPoint{Hour: prevEnd, Lane: offLane},
				domain.PathPoint{Hour: iv.Start, Lane: offLane},
			)
		}

		lane := domain.NormalizeStatus(iv.Status).Lane()
		path = append(path,
			domain.PathPoint{Hour: iv.Start, Lane: lane},
			domain.PathPoint{Hour: iv.End, Lane: lane},
		)
		prevEnd = iv.End
	}

	return path
}
