package geofence

// Region is anything with an identity that can contain a point.
type Region interface {
	RegionID() string
	Contains(p Point) bool
}

// Classification is the result of evaluating one point against a region set.
type Classification struct {
	Inside bool `json:"inside"`
	// Matches lists the ids of every containing region in input order.
	Matches []string `json:"matches,omitempty"`
}

// Classify evaluates pos against every region. Regions are few enough that
// no spatial index is used.
func Classify(pos *Point, regions []Region) Classification {
	var out Classification
	if pos == nil {
		return out
	}
	for _, r := range regions {
		if r.Contains(*pos) {
			out.Matches = append(out.Matches, r.RegionID())
		}
	}
	out.Inside = len(out.Matches) > 0
	return out
}

// NamedRect adapts a bare Rect into a Region.
type NamedRect struct {
	ID string
	Rect
}

// RegionID implements Region
func (n NamedRect) RegionID() string { return n.ID }

// Contains implements Region
func (n NamedRect) Contains(p Point) bool { return PointInRect(p.X, p.Y, n.Rect) }

// NamedCircle adapts a bare Circle into a Region.
type NamedCircle struct {
	ID string
	Circle
}

// RegionID implements Region
func (n NamedCircle) RegionID() string { return n.ID }

// Contains implements Region
func (n NamedCircle) Contains(p Point) bool { return PointInCircle(p.X, p.Y, n.Circle) }
