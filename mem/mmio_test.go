package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappedIO(t *testing.T) {
	assert := assert.New(t)

	mio := NewMappedIO(NewRam(16))

	var written []int32
	reads := []int32{7, -3}

	mio.MapInput(14, func() (int32, error) {
		value := reads[0]
		reads = reads[1:]
		return value, nil
	})
	mio.MapOutput(15, func(value int32) error {
		written = append(written, value)
		return nil
	})

	// Unmapped addresses pass through to the backing ram.
	assert.NoError(mio.Put(3, 42))
	word, err := mio.Get(3)
	assert.NoError(err)
	assert.Equal(uint32(42), word)

	// Mapped input consumes the device stream, negative values intact.
	word, err = mio.Get(14)
	assert.NoError(err)
	assert.Equal(uint32(7), word)

	word, err = mio.Get(14)
	assert.NoError(err)
	assert.Equal(int32(-3), int32(word))

	// Mapped output lands on the device, not the ram.
	assert.NoError(mio.Put(15, uint32(0xffffffff)))
	assert.Equal([]int32{-1}, written)

	word, err = mio.Get(15)
	assert.NoError(err)
	assert.Zero(word)
}

func TestMappedIOErrors(t *testing.T) {
	assert := assert.New(t)

	mio := NewMappedIO(NewRam(4))

	broken := errors.New("device gone")
	mio.MapInput(0, func() (int32, error) { return 0, broken })
	mio.MapOutput(1, func(int32) error { return broken })

	_, err := mio.Get(0)
	assert.ErrorIs(err, broken)

	err = mio.Put(1, 0)
	assert.ErrorIs(err, broken)

	// Bounds errors still surface for unmapped out-of-range addresses.
	_, err = mio.Get(100)
	assert.True(errors.Is(err, ErrBounds(0)))
}
