package era

import "sync"

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit locale -> fallback chains.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale. Keys are canonicalized, so
// lookups are insensitive to case and to "_" versus "-".
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	locale = canonicalLocale(locale)
	if locale == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if normalized := normalizeLocale(fallback); normalized != "" {
			chain = append(chain, normalized)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[canonicalLocale(locale)]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
