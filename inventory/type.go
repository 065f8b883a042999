package inventory

// Type is the kind of an item or world object
// Ordering is total and used for canonical ingredient sorting
type Type uint8

const (
	Empty Type = iota
	Square
	Circle
	Rect
	Triangle
	Heart
	Rust
)

// typeCount is the number of defined types including Empty
const typeCount = int(Rust) + 1

var typeNames = [typeCount]string{
	Empty:    "empty",
	Square:   "square",
	Circle:   "circle",
	Rect:     "rect",
	Triangle: "triangle",
	Heart:    "heart",
	Rust:     "rust",
}

func (t Type) String() string {
	if int(t) < typeCount {
		return typeNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a defined type other than Empty
func (t Type) Valid() bool {
	return t != Empty && int(t) < typeCount
}

// ParseType resolves a lowercase type name
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return Empty, false
}

// Basic lists the types the world spawner draws from
var Basic = []Type{Square, Circle, Triangle}
