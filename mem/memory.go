// Package mem provides the DM32 memory: a flat, word-addressed store with
// bounds-checked access, and a memory-mapped I/O overlay that routes
// selected addresses to device hooks.
package mem

// Memory is the store the CPU fetches from and loads/stores through.
// Addresses are word indices; out of range access fails with ErrBounds.
type Memory interface {
	Get(addr int32) (word uint32, err error)
	Put(addr int32, word uint32) (err error)
}

// Ram is a flat array of words.
type Ram struct {
	words []uint32
}

func NewRam(size int) *Ram {
	return &Ram{words: make([]uint32, size)}
}

// Size returns the number of addressable words.
func (ram *Ram) Size() int32 {
	return int32(len(ram.words))
}

func (ram *Ram) Get(addr int32) (word uint32, err error) {
	if addr < 0 || addr >= ram.Size() {
		err = ErrBounds(addr)
		return
	}

	word = ram.words[addr]
	return
}

func (ram *Ram) Put(addr int32, word uint32) (err error) {
	if addr < 0 || addr >= ram.Size() {
		err = ErrBounds(addr)
		return
	}

	ram.words[addr] = word
	return
}

// LoadWords copies a program image into memory, one word per address
// starting at origin.
func LoadWords(memory Memory, origin int32, words []uint32) (err error) {
	for n, word := range words {
		err = memory.Put(origin+int32(n), word)
		if err != nil {
			return
		}
	}
	return
}
