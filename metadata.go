package naturesite

import "sync"

// PageMeta is the document title and meta description pair derived from the
// site configuration's SEO block.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
}

// MetadataSync keeps the current head metadata in step with the store's
// configuration. It subscribes to config changes so the store stays free of
// presentation concerns; the layout view reads the snapshot on every render.
type MetadataSync struct {
	mu   sync.RWMutex
	meta PageMeta
}

// NewMetadataSync builds a MetadataSync subscribed to the store. The initial
// snapshot is taken immediately from the current config.
func NewMetadataSync(store *Store) *MetadataSync {
	m := &MetadataSync{}
	store.OnConfigChange(m.apply)
	return m
}

func (m *MetadataSync) apply(cfg SiteConfig) {
	m.mu.Lock()
	m.meta = PageMeta{
		Title:       cfg.SEO.MetaTitle,
		Description: cfg.SEO.MetaDescription,
		Keywords:    cfg.SEO.Keywords,
	}
	m.mu.Unlock()
}

// Current returns the metadata snapshot for the layout's <head>.
func (m *MetadataSync) Current() PageMeta {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta
}
