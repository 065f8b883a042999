package engine

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrScheduleCycle = errors.New("engine: system ordering cycle")
	ErrUnknownSystem = errors.New("engine: ordering references unknown system")
	ErrDuplicateName = errors.New("engine: duplicate system name")
)

// buildSchedule orders systems with Kahn's algorithm over After/Before edges
// Among ready systems the lowest priority runs first, then name
func buildSchedule(systems []System) ([]System, error) {
	byName := make(map[string]System, len(systems))
	for _, s := range systems {
		if _, dup := byName[s.Name()]; dup {
			return nil, errors.Wrap(ErrDuplicateName, s.Name())
		}
		byName[s.Name()] = s
	}

	inDegree := make(map[string]int, len(systems))
	successors := make(map[string][]string, len(systems))
	edge := func(from, to string) error {
		if _, ok := byName[from]; !ok {
			return errors.Wrapf(ErrUnknownSystem, "%s (from %s)", from, to)
		}
		if _, ok := byName[to]; !ok {
			return errors.Wrapf(ErrUnknownSystem, "%s (from %s)", to, from)
		}
		successors[from] = append(successors[from], to)
		inDegree[to]++
		return nil
	}

	for _, s := range systems {
		if _, seen := inDegree[s.Name()]; !seen {
			inDegree[s.Name()] = 0
		}
		o, ok := s.(Ordered)
		if !ok {
			continue
		}
		for _, dep := range o.After() {
			if err := edge(dep, s.Name()); err != nil {
				return nil, err
			}
		}
		for _, next := range o.Before() {
			if err := edge(s.Name(), next); err != nil {
				return nil, err
			}
		}
	}

	less := func(a, b string) bool {
		pa, pb := byName[a].Priority(), byName[b].Priority()
		if pa != pb {
			return pa < pb
		}
		return a < b
	}

	var ready []string
	for name, d := range inDegree {
		if d == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]System, 0, len(systems))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
		name := ready[0]
		ready = ready[1:]
		order = append(order, byName[name])

		for _, next := range successors[name] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) != len(systems) {
		var stuck []string
		for name, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, errors.Wrap(ErrScheduleCycle, strings.Join(stuck, ", "))
	}
	return order, nil
}
