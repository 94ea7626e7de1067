package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// NewFileStore opens a store persisted as a single JSON document at path.
// Writes are applied to an in-memory map first, so a save followed by a
// load in the same process always observes the just-written value, then
// flushed to disk atomically (temp file + rename). An fsnotify watcher
// picks up writes made by other processes sharing the file and republishes
// the change topics for the keys that actually changed.
//
// An empty path degrades to a storage-less store: loads return empty,
// saves are dropped. Callers keep working, nothing persists.
func NewFileStore(path string, bus event.Bus, log logger.Logger) (*Store, error) {
	if path == "" {
		log.Warn("no store path configured, content edits will not persist")
		return newStore(noopKV{}, bus, log), nil
	}

	fkv, err := newFileKV(path, log)
	if err != nil {
		return nil, err
	}

	store := newStore(fkv, bus, log)
	fkv.onChange = store.notifyExternal
	if err := fkv.watch(); err != nil {
		log.Warn("cannot watch store file, cross-process updates will not be seen", zap.Error(err))
	}
	return store, nil
}

// NewMemStore builds an in-memory store with its own in-process bus, the
// adapter tests and anything else touching the store should use.
func NewMemStore(log logger.Logger) *Store {
	return newStore(&mapKV{data: make(map[string][]byte)}, event.NewInprocBus(), log)
}

type fileKV struct {
	path   string
	logger logger.Logger

	mu   sync.RWMutex
	data map[string]json.RawMessage

	watcher  *fsnotify.Watcher
	onChange func(keys []string)
}

func newFileKV(path string, log logger.Logger) (*fileKV, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("filestore: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir: %w", err)
	}

	f := &fileKV{path: abs, logger: log, data: make(map[string]json.RawMessage)}
	f.data = f.readFile()
	return f, nil
}

// readFile loads the document from disk. A missing file is a fresh store; a
// corrupt file is logged and treated as empty rather than failing startup.
func (f *fileKV) readFile() map[string]json.RawMessage {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("cannot read store file, starting empty", zap.Error(err))
		}
		return make(map[string]json.RawMessage)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		f.logger.Warn("store file is not a JSON object, starting empty", zap.Error(err))
		return make(map[string]json.RawMessage)
	}
	return doc
}

func (f *fileKV) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory, not the file: atomic renames replace the inode.
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		w.Close()
		return err
	}
	f.watcher = w

	go func() {
		for ev := range w.Events {
			if ev.Name != f.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			f.reload()
		}
	}()
	return nil
}

// reload re-reads the file and publishes change notifications for keys
// whose value differs from the in-memory view. Our own writes produce an
// identical document, so they never fan out twice.
func (f *fileKV) reload() {
	fresh := f.readFile()

	f.mu.Lock()
	var changed []string
	for key, value := range fresh {
		if prev, ok := f.data[key]; !ok || string(prev) != string(value) {
			changed = append(changed, key)
		}
	}
	for key := range f.data {
		if _, ok := fresh[key]; !ok {
			changed = append(changed, key)
		}
	}
	f.data = fresh
	notify := f.onChange
	f.mu.Unlock()

	if len(changed) > 0 && notify != nil {
		notify(changed)
	}
}

func (f *fileKV) get(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	raw, ok := f.data[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func (f *fileKV) set(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = json.RawMessage(value)
	f.persistLocked()
}

func (f *fileKV) del(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.persistLocked()
}

func (f *fileKV) persistLocked() {
	doc, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		f.logger.Error("cannot serialize store document", err)
		return
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		f.logger.Error("cannot write store file", err, zap.String("path", tmp))
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Error("cannot replace store file", err, zap.String("path", f.path))
	}
}

func (f *fileKV) close() error {
	if f.watcher != nil {
		return f.watcher.Close()
	}
	return nil
}

// mapKV backs the in-memory store used by tests and by the storage-less
// degraded mode's sibling.
type mapKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (m *mapKV) get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	return raw, ok
}

func (m *mapKV) set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

func (m *mapKV) del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// noopKV is the degraded backend used when no store path is configured:
// every load misses, every save is dropped.
type noopKV struct{}

func (noopKV) get(string) ([]byte, bool) { return nil, false }
func (noopKV) set(string, []byte)        {}
func (noopKV) del(string)                {}
