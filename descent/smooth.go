package descent

import (
	"github.com/paulmach/orb"
)

// relax applies one Catmull-Rom-style tangent nudge: every interior waypoint
// p[i] moves to p[i] + α·(p[i+1] − p[i−1]), reading the raw neighbors, never
// already-nudged ones. Endpoints stay fixed; paths shorter than 3 points
// pass through untouched. This trades positional accuracy for visual
// smoothness.
func relax(path orb.LineString, alpha float64) orb.LineString {
	if len(path) < 3 || alpha == 0 {
		return path
	}

	out := make(orb.LineString, len(path))
	copy(out, path)
	for i := 1; i < len(path)-1; i++ {
		out[i] = orb.Point{
			path[i].X() + alpha*(path[i+1].X()-path[i-1].X()),
			path[i].Y() + alpha*(path[i+1].Y()-path[i-1].Y()),
		}
	}

	return out
}
