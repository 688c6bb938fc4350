package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type key struct {
	name string
	// forces collisions
	h uint64
}

func (k key) HashCode() uint64 {
	return k.h
}

func (k key) EqualI(o Hashable) bool {
	ok, isKey := o.(key)
	return isKey && ok.name == k.name
}

func TestMapCollisions(t *testing.T) {
	m := make(Map)
	m.Set(key{"a", 1}, 1)
	m.Set(key{"b", 1}, 2)
	m.Set(key{"a", 1}, 3)

	assert.Equal(t, 2, m.Len())
	v, ok := m.Find(key{"a", 1})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 2, m.Add(key{"b", 1}, 5))
	assert.Equal(t, 7, m.Add(key{"c", 2}, 7))
	assert.Equal(t, 3, m.Len())

	_, ok = m.Find(key{"d", 1})
	assert.False(t, ok)

	n := 0
	m.Range(func(Hashable, interface{}) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}
