package engine

import (
	"math"

	"github.com/lixenwraith/body-surfer/vmath"
)

// Overlaps tests the player box against the entity collider
func Overlaps(box vmath.AABB, e Entity) bool {
	c := e.Collider()
	switch c.Shape {
	case ShapeBox:
		return box.Overlaps(c.Box)
	case ShapeSphere:
		return c.Sphere.OverlapsBox(box)
	}
	return false
}

// Resolve returns the single entity that decides this tick's outcome
//
// Order: obstacles before coins, so a simultaneous obstacle and coin end the run
// without scoring; within a kind the entity nearest the player along Z wins,
// and remaining ties go to the lower ID
func Resolve(p *Player, entities []Entity) (Entity, bool) {
	if p == nil || !p.Enabled {
		return Entity{}, false
	}
	box := p.Box()

	var best Entity
	found := false
	bestDist := 0.0
	for _, e := range entities {
		if !Overlaps(box, e) {
			continue
		}
		dist := math.Abs(e.Collider().center().Z - p.Pos.Z)
		if !found || outranks(e, dist, best, bestDist) {
			best, bestDist, found = e, dist, true
		}
	}
	return best, found
}

func outranks(e Entity, dist float64, best Entity, bestDist float64) bool {
	if e.Kind != best.Kind {
		return e.Kind == KindObstacle
	}
	if dist != bestDist {
		return dist < bestDist
	}
	return e.ID < best.ID
}

func (c Collider) center() vmath.Vec3F {
	if c.Shape == ShapeSphere {
		return c.Sphere.Center
	}
	return c.Box.Center()
}
