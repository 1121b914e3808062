package era

import (
	"fmt"

	"golang.org/x/text/language"
)

// Config resolves caller supplied locales to a supported Language
type Config struct {
	DefaultLanguage Language
	Resolver        FallbackResolver
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{DefaultLanguage: English}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	return cfg, nil
}

// WithDefaultLanguage sets the language used when nothing else matches
func WithDefaultLanguage(lang Language) Option {
	return func(c *Config) error {
		if _, ok := vocabularies[lang]; !ok {
			return fmt.Errorf("era: unsupported default language %d", lang)
		}
		c.DefaultLanguage = lang
		return nil
	}
}

// WithDefaultLanguageCode is WithDefaultLanguage for a code. Unlike
// LanguageFromCode it rejects codes that are not supported.
func WithDefaultLanguageCode(code string) Option {
	return func(c *Config) error {
		lang, ok := lookupLanguage(code)
		if !ok {
			return fmt.Errorf("era: default language %q is not supported", code)
		}
		c.DefaultLanguage = lang
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback maps locale to an ordered list of fallback locales.
// It only applies when the resolver is a *StaticFallbackResolver.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// Resolve maps locale to a supported Language. The locale itself is tried
// first, then its configured fallbacks, then the parent chain and base
// language of each of those in the same order. The default language is
// returned when no candidate is supported.
func (cfg *Config) Resolve(locale string) Language {
	if cfg == nil {
		return LanguageFromCode(locale)
	}
	if lang, ok := cfg.lookup(locale); ok {
		return lang
	}
	return cfg.DefaultLanguage
}

// ResolveAcceptLanguage picks the first supported language from an
// Accept-Language header, honoring quality weights.
func (cfg *Config) ResolveAcceptLanguage(header string) Language {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err == nil {
		for _, tag := range tags {
			if lang, ok := cfg.lookup(tag.String()); ok {
				return lang
			}
		}
	}
	if cfg == nil {
		return English
	}
	return cfg.DefaultLanguage
}

// Localize returns r rendered in the language resolved for locale.
func (cfg *Config) Localize(locale string, r Renderer) Renderer {
	return r.WithLanguage(cfg.Resolve(locale))
}

func (cfg *Config) lookup(locale string) (Language, bool) {
	locale = canonicalLocale(locale)
	if locale == "" {
		return English, false
	}

	candidates := []string{locale}
	if cfg != nil && cfg.Resolver != nil {
		candidates = append(candidates, cfg.Resolver.Resolve(locale)...)
	}

	for _, candidate := range candidates {
		if lang, ok := lookupLanguage(candidate); ok {
			return lang, true
		}
	}

	for _, candidate := range candidates {
		for _, parent := range localeParentChain(candidate) {
			if lang, ok := lookupLanguage(parent); ok {
				return lang, true
			}
		}
		if tag, err := language.Parse(candidate); err == nil {
			if lang, ok := languageForTag(tag); ok {
				return lang, true
			}
		}
	}

	return English, false
}
