// Package persistence implements the content.Store contract on top of a
// small key/value layer: one JSON-encoded value per (content type × custom
// data | hidden ids) pair, a scalar slot for the server-data version, and a
// change bus notified on every save.
package persistence

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// Storage keys, kept identical to the original deployment so an exported
// store file remains readable across versions.
const (
	keyCustomProjects         = "portfolio-custom-projects"
	keyCustomExperiences      = "portfolio-custom-experiences"
	keyCustomSkills           = "portfolio-custom-skills"
	keyCustomCertifications   = "portfolio-custom-certifications"
	keyCustomArticles         = "portfolio-custom-articles"
	keyCustomTechWatchProfile = "portfolio-custom-tech-watch-profile"
	keyHiddenProjectIDs       = "portfolio-hidden-project-ids"
	keyHiddenExperienceIDs    = "portfolio-hidden-experience-ids"
	keyHiddenSkillIDs         = "portfolio-hidden-skill-ids"
	keyHiddenSkillCategoryIDs = "portfolio-hidden-skill-category-ids"
	keyHiddenCertificationIDs = "portfolio-hidden-certification-ids"
	keyHiddenArticleIDs       = "portfolio-hidden-article-ids"
	keyServerDataVersion      = "portfolio-server-data-version"
)

// keyTopics maps storage keys to the change topic broadcast when the key is
// written, locally or by another process.
var keyTopics = map[string]string{
	keyCustomProjects:         content.TopicProjects,
	keyHiddenProjectIDs:       content.TopicProjects,
	keyCustomExperiences:      content.TopicExperiences,
	keyHiddenExperienceIDs:    content.TopicExperiences,
	keyCustomSkills:           content.TopicSkills,
	keyHiddenSkillCategoryIDs: content.TopicSkills,
	keyHiddenSkillIDs:         content.TopicSkills,
	keyCustomCertifications:   content.TopicCertifications,
	keyHiddenCertificationIDs: content.TopicCertifications,
	keyCustomArticles:         content.TopicArticles,
	keyHiddenArticleIDs:       content.TopicArticles,
	keyCustomTechWatchProfile: content.TopicTechWatchProfile,
}

type kv interface {
	get(key string) ([]byte, bool)
	set(key string, value []byte)
	del(key string)
}

type Store struct {
	kv     kv
	bus    event.Bus
	logger logger.Logger
}

func newStore(backing kv, bus event.Bus, log logger.Logger) *Store {
	return &Store{kv: backing, bus: bus, logger: log}
}

// Close releases the backing storage (file watcher and friends) when it
// holds resources; a memory-backed store closes to a no-op.
func (s *Store) Close() error {
	if c, ok := s.kv.(interface{ close() error }); ok {
		return c.close()
	}
	return nil
}

func loadList[T any](s *Store, key string) []T {
	raw, ok := s.kv.get(key)
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("cannot parse stored value, treating as empty",
			zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func saveList[T any](s *Store, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("cannot serialize value for storage", err, zap.String("key", key))
		return
	}
	s.kv.set(key, raw)
	s.bus.Publish(keyTopics[key])
}

func (s *Store) CustomProjects() []content.Project {
	return loadList[content.Project](s, keyCustomProjects)
}

func (s *Store) SaveCustomProjects(items []content.Project) {
	saveList(s, keyCustomProjects, items)
}

func (s *Store) HiddenProjectIDs() []string {
	return loadList[string](s, keyHiddenProjectIDs)
}

func (s *Store) SaveHiddenProjectIDs(ids []string) {
	saveList(s, keyHiddenProjectIDs, ids)
}

func (s *Store) CustomExperiences() []content.Experience {
	return loadList[content.Experience](s, keyCustomExperiences)
}

func (s *Store) SaveCustomExperiences(items []content.Experience) {
	saveList(s, keyCustomExperiences, items)
}

func (s *Store) HiddenExperienceIDs() []string {
	return loadList[string](s, keyHiddenExperienceIDs)
}

func (s *Store) SaveHiddenExperienceIDs(ids []string) {
	saveList(s, keyHiddenExperienceIDs, ids)
}

func (s *Store) CustomSkillCategories() []content.SkillCategory {
	return loadList[content.SkillCategory](s, keyCustomSkills)
}

func (s *Store) SaveCustomSkillCategories(items []content.SkillCategory) {
	saveList(s, keyCustomSkills, items)
}

func (s *Store) HiddenSkillCategoryIDs() []string {
	return loadList[string](s, keyHiddenSkillCategoryIDs)
}

func (s *Store) SaveHiddenSkillCategoryIDs(ids []string) {
	saveList(s, keyHiddenSkillCategoryIDs, ids)
}

func (s *Store) HiddenSkillIDs() []string {
	return loadList[string](s, keyHiddenSkillIDs)
}

func (s *Store) SaveHiddenSkillIDs(ids []string) {
	saveList(s, keyHiddenSkillIDs, ids)
}

func (s *Store) CustomCertifications() []content.Certification {
	return loadList[content.Certification](s, keyCustomCertifications)
}

func (s *Store) SaveCustomCertifications(items []content.Certification) {
	saveList(s, keyCustomCertifications, items)
}

func (s *Store) HiddenCertificationIDs() []string {
	return loadList[string](s, keyHiddenCertificationIDs)
}

func (s *Store) SaveHiddenCertificationIDs(ids []string) {
	saveList(s, keyHiddenCertificationIDs, ids)
}

func (s *Store) CustomArticles() []content.TechWatchArticle {
	return loadList[content.TechWatchArticle](s, keyCustomArticles)
}

func (s *Store) SaveCustomArticles(items []content.TechWatchArticle) {
	saveList(s, keyCustomArticles, items)
}

func (s *Store) HiddenArticleIDs() []string {
	return loadList[string](s, keyHiddenArticleIDs)
}

func (s *Store) SaveHiddenArticleIDs(ids []string) {
	saveList(s, keyHiddenArticleIDs, ids)
}

func (s *Store) CustomTechWatchProfile() *content.TechWatchProfile {
	raw, ok := s.kv.get(keyCustomTechWatchProfile)
	if !ok {
		return nil
	}
	var p content.TechWatchProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("cannot parse stored tech-watch profile, treating as absent", zap.Error(err))
		return nil
	}
	return &p
}

func (s *Store) SaveTechWatchProfile(p *content.TechWatchProfile) {
	if p == nil {
		s.kv.del(keyCustomTechWatchProfile)
		s.bus.Publish(content.TopicTechWatchProfile)
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("cannot serialize tech-watch profile", err)
		return
	}
	s.kv.set(keyCustomTechWatchProfile, raw)
	s.bus.Publish(content.TopicTechWatchProfile)
}

// The version slot is a JSON string like every other stored value: the
// backing document only holds valid JSON, so the scalar is encoded too.
func (s *Store) ServerVersion() string {
	raw, ok := s.kv.get(keyServerDataVersion)
	if !ok {
		return ""
	}
	var version string
	if err := json.Unmarshal(raw, &version); err != nil {
		s.logger.Warn("cannot parse stored server version, treating as absent", zap.Error(err))
		return ""
	}
	return version
}

func (s *Store) SaveServerVersion(version string) {
	raw, err := json.Marshal(version)
	if err != nil {
		s.logger.Error("cannot serialize server version", err)
		return
	}
	s.kv.set(keyServerDataVersion, raw)
}

func (s *Store) ClearServerVersion() {
	s.kv.del(keyServerDataVersion)
}

func (s *Store) Subscribe(topic string, fn func()) func() {
	return s.bus.Subscribe(topic, fn)
}

// notifyExternal publishes the topics matching keys changed by another
// process, detected by the backing storage.
func (s *Store) notifyExternal(keys []string) {
	seen := make(map[string]struct{})
	for _, key := range keys {
		topic, ok := keyTopics[key]
		if !ok {
			continue
		}
		if _, dup := seen[topic]; dup {
			continue
		}
		seen[topic] = struct{}{}
		s.bus.Publish(topic)
	}
}
