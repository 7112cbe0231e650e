package component

// Collision categories used by the arena space.
const (
	LayerWall  uint32 = 1 << 0
	LayerActor uint32 = 1 << 1
	LayerDebug uint32 = 1 << 2
)

// CollisionLayer declares an entity's collision category and mask. A zero
// Category is treated as LayerActor and a zero Mask collides with all.
type CollisionLayer struct {
	Category uint32 `yaml:"category,omitempty"`
	Mask     uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
