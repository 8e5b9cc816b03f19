package sim

// System is one stage of a tick.
type System interface {
	Name() string
	Run(s *Simulation)
}

// Scheduler runs registered systems in registration order. After each
// system it flushes the world's deferred commands, so the next system sees
// a fully applied store and no system mutates the store mid-scan.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

func (sc *Scheduler) Register(sys System) {
	if sys == nil {
		return
	}
	sc.systems = append(sc.systems, sys)
}

// Systems returns the registered systems in execution order.
func (sc *Scheduler) Systems() []System {
	return append([]System(nil), sc.systems...)
}

// RunTick executes every system once.
func (sc *Scheduler) RunTick(s *Simulation) {
	for _, sys := range sc.systems {
		sys.Run(s)
		s.world.Flush()
	}
}
