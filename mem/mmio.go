package mem

// InputFunc produces the value read from a mapped address.
type InputFunc func() (value int32, err error)

// OutputFunc consumes the value written to a mapped address.
type OutputFunc func(value int32) (err error)

// MappedIO overlays device hooks on selected addresses of a backing
// Memory. Reads of a mapped input address and writes to a mapped output
// address go to the hook; every other access passes through.
type MappedIO struct {
	Memory

	inputs  map[int32]InputFunc
	outputs map[int32]OutputFunc
}

func NewMappedIO(backing Memory) *MappedIO {
	return &MappedIO{
		Memory:  backing,
		inputs:  map[int32]InputFunc{},
		outputs: map[int32]OutputFunc{},
	}
}

// MapInput routes reads of addr to get.
func (mio *MappedIO) MapInput(addr int32, get InputFunc) {
	mio.inputs[addr] = get
}

// MapOutput routes writes to addr to put.
func (mio *MappedIO) MapOutput(addr int32, put OutputFunc) {
	mio.outputs[addr] = put
}

func (mio *MappedIO) Get(addr int32) (word uint32, err error) {
	if get, ok := mio.inputs[addr]; ok {
		value, err := get()
		return uint32(value), err
	}

	return mio.Memory.Get(addr)
}

func (mio *MappedIO) Put(addr int32, word uint32) (err error) {
	if put, ok := mio.outputs[addr]; ok {
		return put(int32(word))
	}

	return mio.Memory.Put(addr, word)
}
