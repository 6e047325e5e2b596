package core

// Entity is a unique identifier for a live game object
// Identifiers are issued in increasing order, so a lower value was created earlier
type Entity uint64

// NoEntity is the zero value, never issued by a world
const NoEntity Entity = 0
