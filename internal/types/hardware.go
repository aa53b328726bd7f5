package types

// HardwareRegisters is a table of hardware registers, keyed
// by address. Each peripheral owns its own table, so that
// multiple instances never share register state.
type HardwareRegisters map[HardwareAddress]*HardwareRegister

// NewHardwareRegisters returns an empty register table.
func NewHardwareRegisters() HardwareRegisters {
	return HardwareRegisters{}
}

// Register adds a hardware register with the given address
// and write/read functions to the table, replacing any
// register previously registered at the same address.
func (h HardwareRegisters) Register(address HardwareAddress, write WriteFunc, read ReadFunc) {
	h[address] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Read returns the value of the hardware register at the
// given address. ok is false when no register is mapped to
// the address, so the caller can route the access elsewhere.
func (h HardwareRegisters) Read(address uint16) (value uint8, ok bool) {
	r, ok := h[address]
	if !ok {
		return 0, false
	}
	return r.Read(), true
}

// Write writes the given value to the hardware register at
// the given address. handled is false when no register is
// mapped to the address.
func (h HardwareRegisters) Write(address uint16, value uint8) (handled bool, err error) {
	r, ok := h[address]
	if !ok {
		return false, nil
	}
	return true, r.Write(value)
}

// WriteFunc applies a write to a hardware register. A
// non-nil error means the write was rejected and nothing
// was stored.
type WriteFunc func(v uint8) error

// ReadFunc returns the current value of a hardware register.
type ReadFunc func() uint8

// HardwareRegister represents a single memory mapped hardware
// register.
type HardwareRegister struct {
	address HardwareAddress
	write   WriteFunc
	read    ReadFunc
}

// Address returns the address the register is mapped to.
func (r *HardwareRegister) Address() HardwareAddress {
	return r.address
}

// Read returns the value of the register. Registers without
// a read function read as 0xFF.
func (r *HardwareRegister) Read() uint8 {
	if r.read == nil {
		return NoRead()
	}
	return r.read()
}

// Write writes the value to the register. Registers without
// a write function accept and drop the value.
func (r *HardwareRegister) Write(v uint8) error {
	if r.write == nil {
		return NoWrite(v)
	}
	return r.write(v)
}

// NoRead is a convenience function to return a read function that
// always returns 0xFF. This is useful for hardware IO that
// are not readable.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is a convenience function for registers whose writes
// are accepted by the bus but never stored.
func NoWrite(uint8) error {
	return nil
}
