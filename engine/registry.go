package engine

// RemovalReason records why an entity left the registry
type RemovalReason uint8

const (
	ReasonDespawned RemovalReason = iota + 1 // scrolled past the despawn distance
	ReasonCollected                          // coin picked up
	ReasonHit                                // obstacle consumed by the game-over collision
	ReasonCleared                            // registry cleared on restart
)

func (r RemovalReason) String() string {
	switch r {
	case ReasonDespawned:
		return "despawned"
	case ReasonCollected:
		return "collected"
	case ReasonHit:
		return "hit"
	case ReasonCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Registry tracks live obstacles and coins in spawn order
// Not safe for concurrent use; owned by the session's update loop
type Registry struct {
	entities []Entity
	nextID   EntityID
	removed  [ReasonCleared + 1]uint64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entities: make([]Entity, 0, 64),
		nextID:   1,
	}
}

// Add assigns an ID and starts tracking the entity
func (r *Registry) Add(e Entity) Entity {
	e.ID = r.nextID
	r.nextID++
	r.entities = append(r.entities, e)
	return e
}

// Remove stops tracking id and returns the released entity
// Returns false if it is not tracked, so a second removal of the same entity is a detectable no-op
func (r *Registry) Remove(id EntityID, reason RemovalReason) (Entity, bool) {
	for i := range r.entities {
		if r.entities[i].ID == id {
			e := r.entities[i]
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			r.count(reason, 1)
			return e, true
		}
	}
	return Entity{}, false
}

// Get returns the tracked entity with id
func (r *Registry) Get(id EntityID) (Entity, bool) {
	for _, e := range r.entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// All returns a copy of tracked entities in spawn order
func (r *Registry) All() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Len returns the number of tracked entities
func (r *Registry) Len() int {
	return len(r.entities)
}

// Advance moves every entity dz along the travel axis
func (r *Registry) Advance(dz float64) {
	for i := range r.entities {
		r.entities[i].Pos.Z += dz
	}
}

// Clear releases every tracked entity and returns them for handle cleanup
// IDs keep increasing across clears so stale render handles never alias
func (r *Registry) Clear() []Entity {
	out := r.entities
	r.count(ReasonCleared, len(out))
	r.entities = make([]Entity, 0, cap(out))
	return out
}

// Removed returns the lifetime count of removals for reason
func (r *Registry) Removed(reason RemovalReason) uint64 {
	if int(reason) >= len(r.removed) {
		return 0
	}
	return r.removed[reason]
}

func (r *Registry) count(reason RemovalReason, n int) {
	if int(reason) < len(r.removed) {
		r.removed[reason] += uint64(n)
	}
}
