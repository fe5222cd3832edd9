package session

// Store persists session snapshots across reloads and restarts. A user
// with no stored snapshot gets the zero value back, not an error.
type Store interface {
	Load(user string) (Snapshot, error)
	Save(user string, snap Snapshot) error
	Clear(user string) error
}

// MemoryStore is an in-process Store for tests and single-node use.
type MemoryStore struct {
	snaps map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]Snapshot)}
}

func (m *MemoryStore) Load(user string) (Snapshot, error) {
	return m.snaps[user], nil
}

func (m *MemoryStore) Save(user string, snap Snapshot) error {
	m.snaps[user] = snap
	return nil
}

func (m *MemoryStore) Clear(user string) error {
	delete(m.snaps, user)
	return nil
}
