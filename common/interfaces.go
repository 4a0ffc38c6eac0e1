package common

// MemoryFootprintProvider is implemented by all stateful components able to
// report their in-memory size.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Serializer converts a value to and from its fixed-size binary form.
type Serializer[T any] interface {

	// ToBytes provides the binary form of the value.
	ToBytes(T) []byte

	// FromBytes decodes a value from its binary form.
	FromBytes([]byte) T

	// Size returns the size of the value in bytes when serialized.
	Size() int
}
