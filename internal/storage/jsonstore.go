package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// LoadSnapshot reads and decodes the snapshot file at path.
func LoadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&snap)
	return snap, err
}

// SaveSnapshot writes the snapshot as indented JSON. The write goes to a
// temporary file first and is renamed over the target, so a crash mid-write
// never leaves a half-written snapshot behind.
func SaveSnapshot(path string, snap Snapshot) error {
	snap.Meta.Storage = storageKind
	snap.Meta.Version = snapshotVersion
	snap.Meta.Timestamp = time.Now()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
