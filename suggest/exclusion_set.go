package suggest

// ExclusionSet is an insertion-ordered set of canonical keys. Insertion order
// is kept so the prompt's "do not suggest" sample stays stable across passes
// within one request.
type ExclusionSet struct {
	order []string
	keys  map[string]struct{}
}

func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{keys: map[string]struct{}{}}
}

// Add inserts a canonical key. Empty keys and duplicates are ignored;
// the return value reports whether the key was newly added.
func (s *ExclusionSet) Add(key string) bool {
	if key == "" {
		return false
	}
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

func (s *ExclusionSet) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *ExclusionSet) Len() int { return len(s.order) }

// Sample returns up to n keys in insertion order.
func (s *ExclusionSet) Sample(n int) []string {
	if n <= 0 || len(s.order) == 0 {
		return nil
	}
	if n > len(s.order) {
		n = len(s.order)
	}
	out := make([]string, n)
	copy(out, s.order[:n])
	return out
}
