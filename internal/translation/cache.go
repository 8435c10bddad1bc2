package translation

import "sync"

// Cache stores word translations for the lifetime of one process. It is
// safe for concurrent use by the adapter's worker pool.
type Cache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewCache creates an empty translation cache.
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache.
func (c *Cache) Add(word, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[word] = translation
}

// Get retrieves a translation from the cache.
func (c *Cache) Get(word string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[word]
	return translation, ok
}

// GetAll returns a copy of all cached translations.
func (c *Cache) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.translations))
	for k, v := range c.translations {
		result[k] = v
	}
	return result
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}
