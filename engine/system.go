package engine

// System is a unit of per-tick simulation work
type System interface {
	Name() string
	// Priority breaks ties between systems without an ordering constraint; lower runs first
	Priority() int
	Update()
}

// Ordered systems declare hard ordering constraints by system name
type Ordered interface {
	After() []string
	Before() []string
}

// Initializer systems reset their state when the world starts or restarts
type Initializer interface {
	Init()
}
