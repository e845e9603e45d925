package core

// Entity is a unique identifier for a scene entity
// The zero value is the null entity and never refers to a live node
type Entity uint64

// NullEntity is the reserved invalid entity ID
const NullEntity Entity = 0
