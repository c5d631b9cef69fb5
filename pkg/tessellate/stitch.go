package tessellate

import (
	"fmt"

	"github.com/jbeda/geom"
)

// StitchTolerance is the endpoint-coincidence distance for chaining
// segments into a path.
const StitchTolerance = 1e-4

// GapError reports a loop whose segments could not be joined into one
// continuous path.
type GapError struct {
	Placed    int // segments already chained when the scan stalled
	Remaining int // segments no endpoint could reach
}

func (e *GapError) Error() string {
	return fmt.Sprintf("boundary gap: %d segments placed, %d unreachable", e.Placed, e.Remaining)
}

// Stitch chains a loop's segments into a single point path. The first
// segment seeds the chain; each pass scans the rest for a segment whose
// endpoint lies within StitchTolerance of the chain's tail, reversing
// the candidate when its far end is the one that matches. If only the
// chain's head continues, the whole chain is flipped first so growth
// stays at the tail. A stall with segments left over is a GapError.
//
// Stitch owns segs: point sequences may be reversed in place. Joints
// between consecutive segments are deduplicated; a closed polyline
// re-appends its lead point to close itself.
func Stitch(segs []Segment) ([]geom.Coord, error) {
	if len(segs) == 0 {
		return nil, nil
	}

	remaining := make([]*Segment, len(segs))
	for i := range segs {
		remaining[i] = &segs[i]
	}
	placed := []*Segment{remaining[0]}
	remaining = remaining[1:]

	for len(remaining) > 0 {
		head, tail, ok := chainEnds(placed)
		if !ok {
			return nil, &GapError{Placed: len(placed), Remaining: len(remaining)}
		}
		idx, rev := findMatch(tail, remaining)
		if idx < 0 {
			if idx, rev = findMatch(head, remaining); idx >= 0 {
				reverseChain(placed)
			}
		}
		if idx < 0 {
			return nil, &GapError{Placed: len(placed), Remaining: len(remaining)}
		}

		s := remaining[idx]
		if rev {
			s.reverse()
		}
		placed = append(placed, s)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return joinPath(placed), nil
}

// chainEnds returns the chain's open endpoints. A chain seeded by a
// pointless segment has none, and nothing can attach to it.
func chainEnds(placed []*Segment) (head, tail geom.Coord, ok bool) {
	first, last := placed[0], placed[len(placed)-1]
	if len(first.Points) == 0 || len(last.Points) == 0 {
		return geom.Coord{}, geom.Coord{}, false
	}
	return first.first(), last.last(), true
}

// findMatch scans for a segment with an endpoint within StitchTolerance
// of target. The boolean reports that the far end matched, so the
// segment must be reversed before it is appended.
func findMatch(target geom.Coord, remaining []*Segment) (int, bool) {
	for i, s := range remaining {
		if len(s.Points) == 0 {
			continue
		}
		if s.first().DistanceFrom(target) <= StitchTolerance {
			return i, false
		}
		if s.last().DistanceFrom(target) <= StitchTolerance {
			return i, true
		}
	}
	return -1, false
}

// reverseChain flips the whole chain: segment order and every
// segment's points.
func reverseChain(placed []*Segment) {
	for _, s := range placed {
		s.reverse()
	}
	for i, j := 0, len(placed)-1; i < j; i, j = i+1, j-1 {
		placed[i], placed[j] = placed[j], placed[i]
	}
}

// joinPath concatenates the placed segments. A segment's lead point is
// dropped when the path already ends there; closed polylines close
// themselves by appending their lead point again.
func joinPath(placed []*Segment) []geom.Coord {
	var path []geom.Coord
	for _, s := range placed {
		for i, p := range s.Points {
			if i == 0 && len(path) > 0 && p.DistanceFrom(path[len(path)-1]) <= StitchTolerance {
				continue
			}
			path = append(path, p)
		}
		if s.Closed && len(s.Points) > 0 {
			path = append(path, s.Points[0])
		}
	}
	return path
}
