package ecs

type commandKind uint8

const (
	cmdSpawn commandKind = iota
	cmdDespawn
)

type command struct {
	kind  commandKind
	id    EntityID
	build func(EntityID)
}

// World owns the entity pool, the component registry and the deferred
// command buffer. Systems enqueue Spawn/Despawn while scanning; the
// scheduler calls Flush at the barrier after each system.
type World struct {
	pool     *EntityPool
	registry *Registry
	commands []command
	pending  map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:     NewEntityPool(),
		registry: NewRegistry(),
		commands: make([]command, 0, 16),
		pending:  make(map[EntityID]struct{}),
	}
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.pool.Live()
}

// Spawn queues the creation of an entity. build runs at flush time with the
// freshly allocated ID and attaches the entity's components.
func (w *World) Spawn(build func(EntityID)) {
	w.commands = append(w.commands, command{kind: cmdSpawn, build: build})
}

// Despawn queues id for destruction. Queuing the same ID more than once
// before a flush is harmless.
func (w *World) Despawn(id EntityID) {
	if _, dup := w.pending[id]; dup {
		return
	}
	w.pending[id] = struct{}{}
	w.commands = append(w.commands, command{kind: cmdDespawn, id: id})
}

// DespawnQueued reports whether id is already queued for destruction.
func (w *World) DespawnQueued(id EntityID) bool {
	_, ok := w.pending[id]
	return ok
}

// Pending returns the number of commands waiting for the next flush.
func (w *World) Pending() int {
	return len(w.commands)
}

// Flush applies queued commands in the order they were issued and returns
// the IDs spawned by this flush.
func (w *World) Flush() []EntityID {
	var spawned []EntityID
	for _, c := range w.commands {
		switch c.kind {
		case cmdSpawn:
			id := w.pool.Create()
			if c.build != nil {
				c.build(id)
			}
			spawned = append(spawned, id)
		case cmdDespawn:
			if w.pool.Destroy(c.id) {
				w.registry.RemoveAll(c.id)
			}
		}
	}
	w.commands = w.commands[:0]
	clear(w.pending)
	return spawned
}
