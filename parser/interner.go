package parser

// Interner keeps one canonical string per distinct name, so a parameter
// name such as hWnd is allocated once per file however often it repeats.
type Interner struct {
	pool map[string]string
}

// NewInterner creates an interner with room for capacity names.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// InternBytes returns the canonical string for b.
func (i *Interner) InternBytes(b []byte) string {
	// The lookup with string(b) does not allocate
	if s, ok := i.pool[string(b)]; ok {
		return s
	}
	s := string(b)
	i.pool[s] = s
	return s
}

// Size returns the number of distinct names seen.
func (i *Interner) Size() int {
	return len(i.pool)
}
