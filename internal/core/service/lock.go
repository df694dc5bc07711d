package service

import "sync"

// StoreLock serializes the compound read-check-write sequences that span more
// than one collection. The document store only guarantees atomicity per
// document, so every operation that checks one collection before writing
// another (booking admission, cancel, the cascading block/break/repair) takes
// this lock for its full duration. One instance is shared by all services.
type StoreLock struct {
	mu sync.Mutex
}

func NewStoreLock() *StoreLock {
	return &StoreLock{}
}

func (l *StoreLock) Lock()   { l.mu.Lock() }
func (l *StoreLock) Unlock() { l.mu.Unlock() }
