package catalog

import "sync"

// ReloadableCatalog wraps a StaticCatalog and lets the seed file be reloaded
// at runtime without restarting consumers. Lookups always read the catalog
// that was current when the lookup started.
type ReloadableCatalog struct {
	mu       sync.RWMutex
	current  *StaticCatalog
	seedPath string
}

// NewReloadableCatalog loads the seed file (built-ins only when path is
// empty) and wraps the result.
func NewReloadableCatalog(seedPath string) (*ReloadableCatalog, error) {
	var (
		cat *StaticCatalog
		err error
	)
	if seedPath == "" {
		cat = NewStaticCatalog()
	} else {
		cat, err = LoadStaticCatalog(seedPath)
		if err != nil {
			return nil, err
		}
	}
	return &ReloadableCatalog{current: cat, seedPath: seedPath}, nil
}

// Reload re-reads the seed file and swaps in the new catalog. Returns true
// when the catalog version changed. A reload with no seed path is a no-op.
func (r *ReloadableCatalog) Reload() (bool, error) {
	if r.seedPath == "" {
		return false, nil
	}

	next, err := LoadStaticCatalog(r.seedPath)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if next.Version() == r.current.Version() {
		return false, nil
	}
	r.current = next
	return true, nil
}

func (r *ReloadableCatalog) MotherboardSpec(chipsetID string) (MotherboardPhysicalSpec, bool) {
	r.mu.RLock()
	cat := r.current
	r.mu.RUnlock()
	return cat.MotherboardSpec(chipsetID)
}

func (r *ReloadableCatalog) CaseSpec(caseTypeID string) (CasePhysicalSpec, bool) {
	r.mu.RLock()
	cat := r.current
	r.mu.RUnlock()
	return cat.CaseSpec(caseTypeID)
}

func (r *ReloadableCatalog) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Version()
}
