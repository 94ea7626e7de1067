package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

func Test_MemStore_SaveThenLoad(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	assert.Empty(t, store.CustomProjects())

	store.SaveCustomProjects([]content.Project{{ID: "p1", Title: "One"}})
	store.SaveHiddenProjectIDs([]string{"2", "3"})

	assert.Equal(t, "One", store.CustomProjects()[0].Title)
	assert.Equal(t, []string{"2", "3"}, store.HiddenProjectIDs())
}

func Test_Store_NilSavesBecomeEmptyLists(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	store.SaveCustomProjects(nil)
	store.SaveHiddenProjectIDs(nil)

	assert.NotNil(t, store.CustomProjects())
	assert.Empty(t, store.CustomProjects())
	assert.NotNil(t, store.HiddenProjectIDs())
}

func Test_Store_ServerVersionSlot(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	assert.Empty(t, store.ServerVersion())

	store.SaveServerVersion("2026-02-01T08:00:00Z")
	assert.Equal(t, "2026-02-01T08:00:00Z", store.ServerVersion())

	store.ClearServerVersion()
	assert.Empty(t, store.ServerVersion())
}

func Test_Store_TechWatchProfileSingleton(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	assert.Nil(t, store.CustomTechWatchProfile())

	store.SaveTechWatchProfile(&content.TechWatchProfile{
		FavoriteTopic: content.FavoriteTopic{Title: "LLMs", Content: "c"},
	})
	saved := store.CustomTechWatchProfile()
	assert.NotNil(t, saved)
	assert.Equal(t, "LLMs", saved.FavoriteTopic.Title)

	store.SaveTechWatchProfile(nil)
	assert.Nil(t, store.CustomTechWatchProfile())
}

func Test_Store_SaveNotifiesSubscribers(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	got := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(content.TopicProjects, func() {
		select {
		case got <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	store.SaveHiddenProjectIDs([]string{"1"})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification on the projects topic")
	}
}

func Test_Store_UnsubscribeStopsNotifications(t *testing.T) {
	store := NewMemStore(logger.NewNop())

	calls := 0
	unsubscribe := store.Subscribe(content.TopicProjects, func() { calls++ })
	unsubscribe()

	store.SaveCustomProjects([]content.Project{{ID: "x"}})
	assert.Zero(t, calls)
}

func Test_FileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	first.SaveCustomProjects([]content.Project{{ID: "p1", Title: "Persisted"}})
	first.SaveServerVersion("v1")
	assert.NoError(t, first.Close())

	second, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer second.Close()

	assert.Equal(t, "Persisted", second.CustomProjects()[0].Title)
	assert.Equal(t, "v1", second.ServerVersion())
}

func Test_FileStore_EditsAfterVersionSaveStillFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	first.SaveServerVersion("2026-02-01T08:00:00Z")
	first.SaveCustomProjects([]content.Project{{ID: "after-sync", Title: "Edited"}})
	first.SaveHiddenProjectIDs([]string{"1"})
	assert.NoError(t, first.Close())

	// The document on disk stays valid JSON with the version slot in it.
	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "portfolio-server-data-version")

	second, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer second.Close()

	assert.Equal(t, "2026-02-01T08:00:00Z", second.ServerVersion())
	assert.Equal(t, "Edited", second.CustomProjects()[0].Title)
	assert.Equal(t, []string{"1"}, second.HiddenProjectIDs())
}

func Test_FileStore_SameProcessReadAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer store.Close()

	store.SaveHiddenSkillIDs([]string{"python"})
	assert.Equal(t, []string{"python"}, store.HiddenSkillIDs())
}

func Test_FileStore_CorruptValueDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	doc, _ := json.Marshal(map[string]json.RawMessage{
		"portfolio-custom-projects":    json.RawMessage(`{"not": "a list"}`),
		"portfolio-hidden-project-ids": json.RawMessage(`["ok"]`),
	})
	assert.NoError(t, os.WriteFile(path, doc, 0o644))

	store, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer store.Close()

	assert.Empty(t, store.CustomProjects())
	assert.Equal(t, []string{"ok"}, store.HiddenProjectIDs())
}

func Test_FileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer store.Close()

	assert.Empty(t, store.CustomProjects())
}

func Test_FileStore_EmptyPathIsDegradedMode(t *testing.T) {
	store, err := NewFileStore("", event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer store.Close()

	store.SaveCustomProjects([]content.Project{{ID: "lost"}})
	assert.Empty(t, store.CustomProjects())
}

func Test_FileStore_ExternalRewriteNotifiesChangedTopics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store, err := NewFileStore(path, event.NewInprocBus(), logger.NewNop())
	assert.NoError(t, err)
	defer store.Close()

	got := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(content.TopicProjects, func() {
		select {
		case got <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	// Simulate another process replacing the file atomically.
	doc, _ := json.Marshal(map[string]json.RawMessage{
		"portfolio-custom-projects": json.RawMessage(`[{"id": "external"}]`),
	})
	tmp := path + ".ext"
	assert.NoError(t, os.WriteFile(tmp, doc, 0o644))
	assert.NoError(t, os.Rename(tmp, path))

	select {
	case <-got:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification after an external rewrite")
	}
	assert.Equal(t, "external", store.CustomProjects()[0].ID)
}
