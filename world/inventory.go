package world

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/homestead/entity"
)

// Inventory counts held items per archetype. Counts only grow.
type Inventory struct {
	counts *intmap.Map[entity.Archetype, int]
}

func NewInventory() *Inventory {
	return &Inventory{counts: intmap.New[entity.Archetype, int](int(entity.ArchCount))}
}

// Add increases the stack for arch by n. Non-positive n is ignored.
func (inv *Inventory) Add(arch entity.Archetype, n int) {
	if n <= 0 {
		return
	}
	count, _ := inv.counts.Get(arch)
	inv.counts.Put(arch, count+n)
}

func (inv *Inventory) Count(arch entity.Archetype) int {
	count, _ := inv.counts.Get(arch)
	return count
}

// Stack is one non-empty inventory slot.
type Stack struct {
	Arch  entity.Archetype
	Count int
}

// Stacks lists non-empty stacks in archetype order.
func (inv *Inventory) Stacks() []Stack {
	var stacks []Stack
	for arch := range entity.ArchCount {
		if count := inv.Count(arch); count > 0 {
			stacks = append(stacks, Stack{Arch: arch, Count: count})
		}
	}
	return stacks
}

// Kinds is the number of distinct archetypes ever picked up.
func (inv *Inventory) Kinds() int {
	return inv.counts.Len()
}

// Total is the number of items held across all stacks.
func (inv *Inventory) Total() int {
	total := 0
	for _, s := range inv.Stacks() {
		total += s.Count
	}
	return total
}
