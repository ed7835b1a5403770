package engine

import (
	"fmt"

	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/vmath"
)

// EntityID is a unique identifier for an entity within a session
// Renderers key their own handles off it
type EntityID uint64

// Kind is the entity variant
type Kind uint8

const (
	KindObstacle Kind = iota + 1
	KindCoin
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ObstacleKind selects how an obstacle is avoided
type ObstacleKind uint8

const (
	// ObstacleFull sits on the ground and must be jumped over
	ObstacleFull ObstacleKind = iota + 1
	// ObstacleLow hangs overhead and must be ducked under
	ObstacleLow
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleFull:
		return "full"
	case ObstacleLow:
		return "low"
	default:
		return fmt.Sprintf("obstacle(%d)", uint8(k))
	}
}

// Shape is the collider type
type Shape uint8

const (
	ShapeBox Shape = iota + 1
	ShapeSphere
)

// Entity is plain simulation data for an obstacle or a coin
// Pos is the bottom-center for obstacles and the sphere center for coins
type Entity struct {
	ID       EntityID
	Kind     Kind
	Obstacle ObstacleKind
	Pos      vmath.Vec3F
}

// Collider describes the entity's collision volume, only the field matching Shape is set
type Collider struct {
	Shape  Shape
	Box    vmath.AABB
	Sphere vmath.Sphere
}

// NewObstacle creates an obstacle on the given lane X at depth z
func NewObstacle(kind ObstacleKind, x, z float64) Entity {
	y := 0.0
	if kind == ObstacleLow {
		y = constants.LowObstacleBottom
	}
	return Entity{
		Kind:     KindObstacle,
		Obstacle: kind,
		Pos:      vmath.Vec3F{X: x, Y: y, Z: z},
	}
}

// NewCoin creates a coin on the given lane X at depth z
func NewCoin(x, z float64) Entity {
	return Entity{
		Kind: KindCoin,
		Pos:  vmath.Vec3F{X: x, Y: constants.CoinHeight, Z: z},
	}
}

// Collider returns the world-space collision volume
func (e Entity) Collider() Collider {
	switch e.Kind {
	case KindObstacle:
		h := constants.FullObstacleHeight
		if e.Obstacle == ObstacleLow {
			h = constants.LowObstacleHeight
		}
		return Collider{
			Shape: ShapeBox,
			Box:   vmath.BoxAt(e.Pos, constants.ObstacleWidth, h, constants.ObstacleDepth),
		}
	case KindCoin:
		return Collider{
			Shape:  ShapeSphere,
			Sphere: vmath.Sphere{Center: e.Pos, Radius: constants.CoinRadius},
		}
	}
	return Collider{}
}

// Label is a short display name used in logs and events
func (e Entity) Label() string {
	if e.Kind == KindObstacle {
		return e.Kind.String() + "/" + e.Obstacle.String()
	}
	return e.Kind.String()
}
