package types

// State is a save state buffer. Components append their
// fields to it in a fixed order with the Write methods, and
// read them back in the same order with the Read methods.
//
// Reading past the end of the buffer panics; a truncated
// state is a programming error rather than a runtime one.
type State struct {
	raw          []byte // raw state data
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes,
// as previously returned by Bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Rewind moves the read position back to the start of the state.
func (s *State) Rewind() {
	s.readPosition = 0
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

// Len returns the number of bytes written to the state.
func (s *State) Len() int {
	return len(s.raw)
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}
