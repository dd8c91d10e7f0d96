package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func (i item) Key() int { return i.ID }

func TestCollectionInsertLookup(t *testing.T) {
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(item{ID: 1, Name: "one"}))

	got, err := c.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, item{ID: 1, Name: "one"}, got)
	assert.True(t, c.Has(1))
	assert.Equal(t, "items", c.Kind())
}

func TestCollectionDuplicateKey(t *testing.T) {
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(item{ID: 5, Name: "Hall A"}))

	err := c.Insert(item{ID: 5, Name: "Hall B"})
	require.ErrorIs(t, err, ErrDuplicateKey)

	var ke *KeyError
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, 5, ke.ID)
	assert.Equal(t, "insert", ke.Op)

	got, err := c.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, "Hall A", got.Name)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionDelete(t *testing.T) {
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(item{ID: 1}))
	require.NoError(t, c.Insert(item{ID: 2}))

	require.NoError(t, c.Delete(1))
	_, err := c.Lookup(1)
	assert.ErrorIs(t, err, ErrNotFound)

	err = c.Delete(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has(2))
}

func TestCollectionLookupMissing(t *testing.T) {
	c := NewCollection[item]("items")
	got, err := c.Lookup(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, item{}, got)
	assert.EqualError(t, err, "items lookup 99: not found")
}

func TestCollectionReinsertAfterDelete(t *testing.T) {
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(item{ID: 3, Name: "old"}))
	require.NoError(t, c.Delete(3))
	require.NoError(t, c.Insert(item{ID: 3, Name: "new"}))

	got, err := c.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
}

func TestCollectionAllOrderedByKey(t *testing.T) {
	c := NewCollection[item]("items")
	for _, id := range []int{30, 1, 12, 0} {
		require.NoError(t, c.Insert(item{ID: id}))
	}

	var ids []int
	for _, it := range c.All() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{0, 1, 12, 30}, ids)
	assert.Empty(t, NewCollection[item]("empty").All())
}
