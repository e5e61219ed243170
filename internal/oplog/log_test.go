package oplog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type setOp struct {
	key   string
	value int
}

func (o setOp) Apply(m map[string]int) any {
	prev, ok := m[o.key]
	m[o.key] = o.value
	if !ok {
		return nil
	}
	return prev
}

type deleteOp struct{ key string }

func (o deleteOp) Apply(m map[string]int) any {
	delete(m, o.key)
	return nil
}

func TestLog(t *testing.T) {
	log := NewLog[map[string]int]()
	m := map[string]int{}

	// Each of these subtests piggybacks on the previous one's state,
	// mirroring the teacher's own oplog test.
	t.Run("Push and Apply", func(t *testing.T) {
		log.Push(setOp{"foo", 1})
		log.Push(setOp{"bar", 2})
		log.Apply(m)
		log.Clear()

		assert.Len(t, m, 2)
		assert.Equal(t, 1, m["foo"])
	})
	t.Run("Delete", func(t *testing.T) {
		log.Push(deleteOp{"foo"})
		log.Apply(m)
		log.Clear()

		assert.Len(t, m, 1)
	})
	t.Run("PushAndApply", func(t *testing.T) {
		result := log.PushAndApply(setOp{"baz", 3}, m)
		assert.Len(t, m, 2)
		assert.Nil(t, result, "baz was absent before this write")
	})
	t.Run("PushAndApply returns previous value", func(t *testing.T) {
		result := log.PushAndApply(setOp{"baz", 4}, m)
		assert.Equal(t, 3, result)
	})
	t.Run("Len tracks pending entries", func(t *testing.T) {
		assert.Equal(t, 2, log.Len())
		log.Clear()
		assert.Equal(t, 0, log.Len())
	})
}
