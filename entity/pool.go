package entity

import (
	"fmt"
	"iter"
)

// MaxEntities is the pool capacity.
const MaxEntities = 1024

// Pool is a fixed arena of entities. Slots are found by linear scan and
// cleared to their zero value on destroy.
type Pool struct {
	entities    [MaxEntities]Entity
	generations [MaxEntities]uint32
	count       int
}

func NewPool() *Pool {
	return &Pool{}
}

// Create claims the first free slot. Running out of slots is an invariant
// violation and panics.
func (p *Pool) Create() (Handle, *Entity) {
	for i := range p.entities {
		e := &p.entities[i]
		if e.Valid {
			continue
		}
		*e = Entity{Valid: true}
		p.generations[i]++
		if p.generations[i] == 0 {
			p.generations[i] = 1
		}
		p.count++
		return NewHandle(uint32(i), p.generations[i]), e
	}
	panic(fmt.Sprintf("entity: pool exhausted (%d entities)", MaxEntities))
}

// Get resolves h, returning nil if the slot was destroyed or reused.
func (p *Pool) Get(h Handle) *Entity {
	i := h.Index()
	if h.IsNil() || i >= MaxEntities {
		return nil
	}
	if p.generations[i] != h.Generation() || !p.entities[i].Valid {
		return nil
	}
	return &p.entities[i]
}

// Destroy clears the slot h refers to. Stale handles are ignored and report
// false.
func (p *Pool) Destroy(h Handle) bool {
	e := p.Get(h)
	if e == nil {
		return false
	}
	*e = Entity{}
	p.count--
	return true
}

// All yields every valid entity in slot order. Destroying the yielded
// entity during iteration is allowed.
func (p *Pool) All() iter.Seq2[Handle, *Entity] {
	return func(yield func(Handle, *Entity) bool) {
		for i := range p.entities {
			e := &p.entities[i]
			if !e.Valid {
				continue
			}
			if !yield(NewHandle(uint32(i), p.generations[i]), e) {
				return
			}
		}
	}
}

// Len is the number of valid slots.
func (p *Pool) Len() int {
	return p.count
}

// Cap is MaxEntities.
func (p *Pool) Cap() int {
	return MaxEntities
}
