package inventory

// Outcome describes a synthesis attempt
type Outcome uint8

const (
	Crafted Outcome = iota
	NoRecipe
	InsufficientStock
	NoRoom
)

func (o Outcome) String() string {
	switch o {
	case Crafted:
		return "crafted"
	case NoRecipe:
		return "no_recipe"
	case InsufficientStock:
		return "insufficient_stock"
	case NoRoom:
		return "no_room"
	default:
		return "unknown"
	}
}

// Result carries the synthesis outcome and, on success, the crafted type and consumed slots
type Result struct {
	Outcome  Outcome
	Type     Type
	Consumed []int
	Slot     int
}

// Match greedily assigns Storage slots to the required ingredient counts
// Returns the matched slot indices and whether every requirement was met
func Match(s *Storage, need Multiset) ([]int, bool) {
	remaining := make(map[Type]int, len(need))
	for _, ing := range need {
		remaining[ing.Type] = ing.Count
	}

	matched := make([]int, 0, need.Total())
	for i, t := range s.items {
		if len(remaining) == 0 {
			break
		}
		n, ok := remaining[t]
		if !ok {
			continue
		}
		matched = append(matched, i)
		if n == 1 {
			delete(remaining, t)
		} else {
			remaining[t] = n - 1
		}
	}
	return matched, len(remaining) == 0
}

// Synthesize crafts the Blueprint's recipe out of Storage stock
// The Blueprint only selects the recipe; Storage is debited. On any failure nothing is mutated
func Synthesize(rt *RecipeTable, bp *Blueprint, s *Storage) Result {
	need := bp.Canonical()
	out, ok := rt.Lookup(need)
	if !ok {
		return Result{Outcome: NoRecipe, Slot: -1}
	}

	matched, ok := Match(s, need)
	if !ok {
		return Result{Outcome: InsufficientStock, Type: out, Slot: -1}
	}

	snapshot := s.Slots()
	s.Remove(matched...)
	slot, ok := s.Insert(out)
	if !ok {
		copy(s.items, snapshot)
		return Result{Outcome: NoRoom, Type: out, Slot: -1}
	}

	return Result{Outcome: Crafted, Type: out, Consumed: matched, Slot: slot}
}
