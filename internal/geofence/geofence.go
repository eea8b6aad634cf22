// Package geofence classifies points in the map's percentage coordinate
// space against rectangular and circular regions. All boundaries are
// inclusive.
package geofence

// Point is a position in percent of the background image (0-100 per axis).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Circle is a center and radius in percentage units.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// PointInRect reports whether (px, py) lies inside or on the edge of r.
func PointInRect(px, py float64, r Rect) bool {
	return px >= r.X && px <= r.X+r.Width &&
		py >= r.Y && py <= r.Y+r.Height
}

// PointInCircle reports whether (px, py) is within c.Radius of the center.
// Squared distances avoid the sqrt rounding that could push an exact
// boundary point outside.
func PointInCircle(px, py float64, c Circle) bool {
	dx := px - c.X
	dy := py - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// IsPlayerInAnyRestPoint reports whether pos falls in any of the circles.
// A nil position means the player has no token on the map and is never
// inside.
func IsPlayerInAnyRestPoint(pos *Point, regions []Circle) bool {
	if pos == nil {
		return false
	}
	for _, c := range regions {
		if PointInCircle(pos.X, pos.Y, c) {
			return true
		}
	}
	return false
}
