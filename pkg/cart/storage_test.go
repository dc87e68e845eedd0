package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type brokenStorage struct{}

func (brokenStorage) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (brokenStorage) Set(string, string) error        { return errors.New("disk gone") }
func (brokenStorage) Remove(string) error             { return errors.New("disk gone") }

func TestOpen_MirrorsMutations(t *testing.T) {
	storage := NewMemoryStorage()
	key := Key("user-1")

	s := Open(storage, key, nil)
	require.NoError(t, s.AddItem(jollof(), nil))
	require.NoError(t, s.AddItem(kelewele(), nil))
	s.UpdateQuantity("kelewele", 3)

	reopened := Open(storage, key, nil)
	assert.Equal(t, s.Items(), reopened.Items())
	assert.Equal(t, int64(25+30), reopened.Subtotal())

	s.Clear()
	_, ok, err := storage.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_StartsEmptyOnGarbage(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(Key("u"), "{not json"))

	s := Open(storage, Key("u"), nil)
	assert.True(t, s.IsEmpty())
}

func TestOpen_StorageFailuresAreSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	s := Open(brokenStorage{}, Key("u"), zap.New(core))
	require.NoError(t, s.AddItem(jollof(), nil))
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, logs.FilterMessage("cart storage read failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("cart storage write failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("cart storage remove failed").Len())
}

func TestKeyIsPerOwner(t *testing.T) {
	assert.NotEqual(t, Key("a"), Key("b"))
	assert.Equal(t, "soucey-cart:a", Key("a"))
}
