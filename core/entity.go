package core

// Entity is an opaque identifier; 0 is never allocated and means "none"
type Entity uint64

// None is the null entity reference
const None Entity = 0

// Valid reports whether e refers to an allocated id (it may still be stale)
func (e Entity) Valid() bool {
	return e != None
}
