package inventory

// slots is the shared fixed-capacity backing for Storage and Blueprint
type slots []Type

func (s slots) insert(t Type) (int, bool) {
	if !t.Valid() {
		return -1, false
	}
	for i, v := range s {
		if v == Empty {
			s[i] = t
			return i, true
		}
	}
	return -1, false
}

func (s slots) full() bool {
	for _, v := range s {
		if v == Empty {
			return false
		}
	}
	return true
}

func (s slots) count() int {
	n := 0
	for _, v := range s {
		if v != Empty {
			n++
		}
	}
	return n
}

// Storage is the player's bounded item inventory
// Slot order only matters as first-free-slot insertion order
type Storage struct {
	items slots
}

// NewStorage creates an all-Empty storage with size slots
func NewStorage(size int) *Storage {
	return &Storage{items: make(slots, size)}
}

// StorageOf creates a storage preloaded with items, in slot order
func StorageOf(items ...Type) *Storage {
	s := &Storage{items: make(slots, len(items))}
	copy(s.items, items)
	return s
}

// Insert places t in the first Empty slot and returns its index
// Returns false without mutation when full or t is Empty
func (s *Storage) Insert(t Type) (int, bool) {
	return s.items.insert(t)
}

// Remove resets the named slots to Empty; out-of-range indices are ignored
func (s *Storage) Remove(indices ...int) {
	for _, i := range indices {
		if i >= 0 && i < len(s.items) {
			s.items[i] = Empty
		}
	}
}

// At returns the item in slot i, Empty when out of range
func (s *Storage) At(i int) Type {
	if i < 0 || i >= len(s.items) {
		return Empty
	}
	return s.items[i]
}

func (s *Storage) Size() int { return len(s.items) }
func (s *Storage) Len() int { return s.items.count() }
func (s *Storage) Full() bool { return s.items.full() }

// Slots returns a copy of the slot contents
func (s *Storage) Slots() []Type {
	out := make([]Type, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns how many slots hold t
func (s *Storage) Count(t Type) int {
	n := 0
	for _, v := range s.items {
		if v == t {
			n++
		}
	}
	return n
}

// Blueprint is the crafting staging area; it never owns items
type Blueprint struct {
	items slots
}

// NewBlueprint creates an all-Empty blueprint with size slots
func NewBlueprint(size int) *Blueprint {
	return &Blueprint{items: make(slots, size)}
}

// Insert stages t in the first Empty slot; false when full or t is Empty
func (b *Blueprint) Insert(t Type) bool {
	_, ok := b.items.insert(t)
	return ok
}

// Clear resets every slot to Empty
func (b *Blueprint) Clear() {
	for i := range b.items {
		b.items[i] = Empty
	}
}

func (b *Blueprint) Size() int { return len(b.items) }
func (b *Blueprint) Len() int { return b.items.count() }
func (b *Blueprint) Full() bool { return b.items.full() }

// Slots returns a copy of the slot contents
func (b *Blueprint) Slots() []Type {
	out := make([]Type, len(b.items))
	copy(out, b.items)
	return out
}

// Canonical returns the staged ingredients as a canonical multiset
func (b *Blueprint) Canonical() Multiset {
	return Canonicalize(b.items...)
}
