package adapter

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// fileBackup remembers the original bytes of project files an oracle edits.
// A nil entry records that the file did not exist.
type fileBackup struct {
	fs     ProjectFSAdapter
	mu     sync.Mutex
	files  map[string][]byte
	perms  map[string]os.FileMode
	hashes map[string]string
}

func newFileBackup(fs ProjectFSAdapter) *fileBackup {
	return &fileBackup{
		fs:     fs,
		files:  map[string][]byte{},
		perms:  map[string]os.FileMode{},
		hashes: map[string]string{},
	}
}

// Snapshot records each path the first time it is seen.
func (b *fileBackup) Snapshot(paths ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, path := range paths {
		if _, ok := b.files[path]; ok {
			continue
		}

		if !b.fs.Exists(path) {
			b.files[path] = nil

			continue
		}

		content, err := b.fs.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "snapshot %s", path)
		}

		perm := os.FileMode(0o644)
		if info, err := b.fs.FileInfo(path); err == nil {
			perm = info.Mode().Perm()
		}

		hash, err := b.fs.HashFile(path)
		if err != nil {
			return errors.Wrapf(err, "snapshot %s", path)
		}

		b.files[path] = content
		b.perms[path] = perm
		b.hashes[path] = hash
	}

	return nil
}

// Restore writes back every snapshotted file, skipping files whose content
// is already unchanged.
func (b *fileBackup) Restore() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for path, content := range b.files {
		if content == nil {
			if b.fs.Exists(path) {
				if err := b.fs.RemoveAll(path); err != nil {
					return errors.Wrapf(err, "remove %s", path)
				}
			}

			continue
		}

		if current, err := b.fs.HashFile(path); err == nil && current == b.hashes[path] {
			continue
		}

		if err := b.fs.WriteFile(path, content, b.perms[path]); err != nil {
			return errors.Wrapf(err, "restore %s", path)
		}
	}

	return nil
}
