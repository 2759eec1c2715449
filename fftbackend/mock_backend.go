package fftbackend

// MockBackend is a configurable backend for development and tests. It
// reports a caller-chosen name and availability and delegates transforms to
// the embedded implementation.
type MockBackend struct {
	BackendName string
	Usable      bool

	// TransformCalls counts Transform invocations, so tests can assert
	// which backend selection actually routed to.
	TransformCalls int

	embedded EmbeddedBackend
}

// NewMockBackend returns an available mock backend with the given name.
func NewMockBackend(name string) *MockBackend {
	return &MockBackend{BackendName: name, Usable: true}
}

func (b *MockBackend) Name() string {
	return b.BackendName
}

func (b *MockBackend) Available() bool {
	return b.Usable
}

func (b *MockBackend) Transform(dst, src []complex128, inverse bool) error {
	b.TransformCalls++

	return b.embedded.Transform(dst, src, inverse)
}
