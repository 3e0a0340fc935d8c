package cache

// ScopedKeyer wraps a Keyer and prefixes all keys with a namespace.
// Server deployments use this to isolate per-tenant cache entries
// inside a shared Redis instance.
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer creates a keyer that namespaces all keys under scope.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	return &ScopedKeyer{inner: inner, scope: scope}
}

// SpecKey implements Keyer.
func (k *ScopedKeyer) SpecKey(specHash string) string {
	return k.scope + ":" + k.inner.SpecKey(specHash)
}

// LayoutKey implements Keyer.
func (k *ScopedKeyer) LayoutKey(specHash string, width, height int) string {
	return k.scope + ":" + k.inner.LayoutKey(specHash, width, height)
}
