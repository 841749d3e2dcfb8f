package entity_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	h := entity.NewHandle(17, 3)
	assert.Equal(t, uint32(17), h.Index())
	assert.Equal(t, uint32(3), h.Generation())
	assert.False(t, h.IsNil())
	assert.True(t, entity.Nil.IsNil())
}

func TestPool(t *testing.T) {
	t.Run("create and destroy", func(t *testing.T) {
		pool := entity.NewPool()

		h, e := pool.Create()
		require.NotNil(t, e)
		assert.True(t, e.Valid)
		e.Arch = entity.ArchTree
		e.Pos = mgl32.Vec2{16, 32}

		assert.Same(t, e, pool.Get(h))
		assert.Equal(t, 1, pool.Len())

		assert.True(t, pool.Destroy(h))
		assert.Equal(t, 0, pool.Len())
		assert.Nil(t, pool.Get(h))
		assert.Equal(t, entity.Entity{}, *e, "slot is cleared")

		assert.False(t, pool.Destroy(h), "second destroy is a no-op")
	})

	t.Run("stale handle after reuse", func(t *testing.T) {
		pool := entity.NewPool()

		old, _ := pool.Create()
		pool.Destroy(old)
		reused, e := pool.Create()

		assert.Equal(t, old.Index(), reused.Index(), "first free slot is reused")
		assert.NotEqual(t, old, reused)
		assert.Nil(t, pool.Get(old))
		assert.Same(t, e, pool.Get(reused))

		assert.False(t, pool.Destroy(old))
		assert.Equal(t, 1, pool.Len())
	})

	t.Run("nil and out of range handles", func(t *testing.T) {
		pool := entity.NewPool()
		pool.Create()

		assert.Nil(t, pool.Get(entity.Nil))
		assert.Nil(t, pool.Get(entity.NewHandle(entity.MaxEntities+5, 1)))
	})

	t.Run("exhaustion panics", func(t *testing.T) {
		pool := entity.NewPool()
		for range entity.MaxEntities {
			pool.Create()
		}
		assert.Equal(t, pool.Cap(), pool.Len())
		assert.Panics(t, func() { pool.Create() })
	})

	t.Run("iteration skips free slots", func(t *testing.T) {
		pool := entity.NewPool()
		var handles []entity.Handle
		for range 5 {
			h, _ := pool.Create()
			handles = append(handles, h)
		}
		pool.Destroy(handles[1])
		pool.Destroy(handles[3])

		var seen []entity.Handle
		for h, e := range pool.All() {
			assert.True(t, e.Valid)
			seen = append(seen, h)
		}
		assert.Equal(t, []entity.Handle{handles[0], handles[2], handles[4]}, seen)
	})

	t.Run("destroy while iterating", func(t *testing.T) {
		pool := entity.NewPool()
		for range 10 {
			pool.Create()
		}
		for h := range pool.All() {
			pool.Destroy(h)
		}
		assert.Zero(t, pool.Len())
	})
}

func TestPoolRandomOperations(t *testing.T) {
	pool := entity.NewPool()
	rng := rand.New(rand.NewPCG(7, 11))
	live := map[entity.Handle]bool{}
	occupied := map[uint32]bool{}
	creates, destroys := 0, 0

	for range 20000 {
		if len(live) < entity.MaxEntities && (len(live) == 0 || rng.IntN(3) > 0) {
			h, e := pool.Create()
			require.False(t, occupied[h.Index()], "create returned a live slot")
			require.True(t, e.Valid)
			live[h] = true
			occupied[h.Index()] = true
			creates++
		} else {
			var victim entity.Handle
			for h := range live {
				victim = h
				break
			}
			require.True(t, pool.Destroy(victim))
			delete(live, victim)
			delete(occupied, victim.Index())
			destroys++
		}
		require.Equal(t, creates-destroys, pool.Len())
	}

	counted := 0
	for h := range pool.All() {
		assert.True(t, live[h])
		counted++
	}
	assert.Equal(t, len(live), counted)
}

func TestParseArchetype(t *testing.T) {
	for a := range entity.ArchCount {
		parsed, err := entity.ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err := entity.ParseArchetype("dragon")
	assert.Error(t, err)
}

func ExamplePool() {
	pool := entity.NewPool()

	tree, e := pool.Create()
	e.Arch = entity.ArchTree
	e.Health = 4

	rock, e := pool.Create()
	e.Arch = entity.ArchItemRock

	pool.Destroy(tree)

	for _, e := range pool.All() {
		fmt.Println(e.Arch)
	}
	fmt.Println(pool.Get(tree) == nil, pool.Get(rock) != nil)
	// Output:
	// item_rock
	// true true
}

func BenchmarkPoolCreateDestroy(b *testing.B) {
	pool := entity.NewPool()
	for range entity.MaxEntities / 2 {
		pool.Create()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := pool.Create()
		pool.Destroy(h)
	}
}

func BenchmarkPoolScan(b *testing.B) {
	pool := entity.NewPool()
	for i := range entity.MaxEntities {
		h, _ := pool.Create()
		if i%3 == 0 {
			pool.Destroy(h)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, e := range pool.All() {
			scanSink += e.Health
		}
	}
}

var scanSink int
