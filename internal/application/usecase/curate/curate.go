// Package curate implements the admin-initiated writes: upserting custom
// entries, soft-deleting defaults through the hidden-id sets, restoring
// them, and replacing whole tables (the import/bulk-edit path). Every write
// lands in the persisted store and fans out a Kafka content event for
// downstream consumers such as the snapshot publisher.
package curate

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/internal/application/usecase/reconcile"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type Service struct {
	store  content.Store
	events *event.KafkaProducerClient
	logger logger.Logger
}

// NewService wires the admin write side. events may be nil when no broker
// is configured; writes then stay local.
func NewService(store content.Store, events *event.KafkaProducerClient, log logger.Logger) *Service {
	return &Service{store: store, events: events, logger: log}
}

func (s *Service) notify(kind, action, id string) {
	if s.events == nil {
		return
	}
	payload := event.ContentEventPayload{Kind: kind, Action: action, ID: id}
	if err := s.events.PublishContentEvent(context.Background(), payload); err != nil {
		s.logger.Error("Failed to publish content event", err,
			zap.String("kind", kind), zap.String("action", action))
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func upsertByKey[T reconcile.Identifiable](list []T, item T) []T {
	for i, existing := range list {
		if existing.Key() == item.Key() {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func removeByKey[T reconcile.Identifiable](list []T, id string) ([]T, bool) {
	kept := make([]T, 0, len(list))
	removed := false
	for _, item := range list {
		if item.Key() == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}

func withoutID(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func withID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// --- Projects ---

func (s *Service) UpsertProject(p content.Project) content.Project {
	if p.ID == "" {
		p.ID = newID("project")
	}
	s.store.SaveCustomProjects(upsertByKey(s.store.CustomProjects(), p))
	s.notify("projects", "upserted", p.ID)
	return p
}

// RemoveProject deletes a custom project outright; for a default project it
// records the identifier in the hidden set instead, suppressing it from the
// reconciled output without touching the compiled-in row.
func (s *Service) RemoveProject(id string) {
	custom, removed := removeByKey(s.store.CustomProjects(), id)
	if removed {
		s.store.SaveCustomProjects(custom)
		s.store.SaveHiddenProjectIDs(withoutID(s.store.HiddenProjectIDs(), id))
		s.notify("projects", "removed", id)
		return
	}
	s.store.SaveHiddenProjectIDs(withID(s.store.HiddenProjectIDs(), id))
	s.notify("projects", "hidden", id)
}

func (s *Service) RestoreProject(id string) {
	s.store.SaveHiddenProjectIDs(withoutID(s.store.HiddenProjectIDs(), id))
	s.notify("projects", "restored", id)
}

func (s *Service) ReplaceProjects(custom []content.Project, hiddenIDs []string) {
	if custom != nil {
		s.store.SaveCustomProjects(custom)
	}
	if hiddenIDs != nil {
		s.store.SaveHiddenProjectIDs(hiddenIDs)
	}
	s.notify("projects", "replaced", "")
}

// --- Experiences ---

func (s *Service) UpsertExperience(e content.Experience) content.Experience {
	if e.ID == "" {
		e.ID = newID("experience")
	}
	s.store.SaveCustomExperiences(upsertByKey(s.store.CustomExperiences(), e))
	s.notify("experiences", "upserted", e.ID)
	return e
}

func (s *Service) RemoveExperience(id string) {
	custom, removed := removeByKey(s.store.CustomExperiences(), id)
	if removed {
		s.store.SaveCustomExperiences(custom)
		s.store.SaveHiddenExperienceIDs(withoutID(s.store.HiddenExperienceIDs(), id))
		s.notify("experiences", "removed", id)
		return
	}
	s.store.SaveHiddenExperienceIDs(withID(s.store.HiddenExperienceIDs(), id))
	s.notify("experiences", "hidden", id)
}

func (s *Service) RestoreExperience(id string) {
	s.store.SaveHiddenExperienceIDs(withoutID(s.store.HiddenExperienceIDs(), id))
	s.notify("experiences", "restored", id)
}

func (s *Service) ReplaceExperiences(custom []content.Experience, hiddenIDs []string) {
	if custom != nil {
		s.store.SaveCustomExperiences(custom)
	}
	if hiddenIDs != nil {
		s.store.SaveHiddenExperienceIDs(hiddenIDs)
	}
	s.notify("experiences", "replaced", "")
}

// --- Skill categories and skills ---

func (s *Service) UpsertSkillCategory(c content.SkillCategory) content.SkillCategory {
	if c.ID == "" {
		c.ID = newID("category")
	}
	for i := range c.Skills {
		if c.Skills[i].ID == "" {
			c.Skills[i].ID = newID("skill")
		}
	}
	s.store.SaveCustomSkillCategories(upsertByKey(s.store.CustomSkillCategories(), c))
	s.notify("skills", "upserted", c.ID)
	return c
}

func (s *Service) RemoveSkillCategory(id string) {
	custom, removed := removeByKey(s.store.CustomSkillCategories(), id)
	if removed {
		s.store.SaveCustomSkillCategories(custom)
		s.store.SaveHiddenSkillCategoryIDs(withoutID(s.store.HiddenSkillCategoryIDs(), id))
		s.notify("skills", "removed", id)
		return
	}
	s.store.SaveHiddenSkillCategoryIDs(withID(s.store.HiddenSkillCategoryIDs(), id))
	s.notify("skills", "hidden", id)
}

func (s *Service) RestoreSkillCategory(id string) {
	s.store.SaveHiddenSkillCategoryIDs(withoutID(s.store.HiddenSkillCategoryIDs(), id))
	s.notify("skills", "restored", id)
}

// HideSkill suppresses one skill by its own identifier, independently of
// the category it sits in.
func (s *Service) HideSkill(id string) {
	s.store.SaveHiddenSkillIDs(withID(s.store.HiddenSkillIDs(), id))
	s.notify("skills", "skill-hidden", id)
}

func (s *Service) RestoreSkill(id string) {
	s.store.SaveHiddenSkillIDs(withoutID(s.store.HiddenSkillIDs(), id))
	s.notify("skills", "skill-restored", id)
}

func (s *Service) ReplaceSkillCategories(custom []content.SkillCategory, hiddenCategoryIDs, hiddenSkillIDs []string) {
	if custom != nil {
		s.store.SaveCustomSkillCategories(custom)
	}
	if hiddenCategoryIDs != nil {
		s.store.SaveHiddenSkillCategoryIDs(hiddenCategoryIDs)
	}
	if hiddenSkillIDs != nil {
		s.store.SaveHiddenSkillIDs(hiddenSkillIDs)
	}
	s.notify("skills", "replaced", "")
}

// --- Certifications ---

func (s *Service) UpsertCertification(c content.Certification) content.Certification {
	if c.ID == "" {
		c.ID = newID("certification")
	}
	s.store.SaveCustomCertifications(upsertByKey(s.store.CustomCertifications(), c))
	s.notify("certifications", "upserted", c.ID)
	return c
}

func (s *Service) RemoveCertification(id string) {
	custom, removed := removeByKey(s.store.CustomCertifications(), id)
	if removed {
		s.store.SaveCustomCertifications(custom)
		s.store.SaveHiddenCertificationIDs(withoutID(s.store.HiddenCertificationIDs(), id))
		s.notify("certifications", "removed", id)
		return
	}
	s.store.SaveHiddenCertificationIDs(withID(s.store.HiddenCertificationIDs(), id))
	s.notify("certifications", "hidden", id)
}

func (s *Service) RestoreCertification(id string) {
	s.store.SaveHiddenCertificationIDs(withoutID(s.store.HiddenCertificationIDs(), id))
	s.notify("certifications", "restored", id)
}

func (s *Service) ReplaceCertifications(custom []content.Certification, hiddenIDs []string) {
	if custom != nil {
		s.store.SaveCustomCertifications(custom)
	}
	if hiddenIDs != nil {
		s.store.SaveHiddenCertificationIDs(hiddenIDs)
	}
	s.notify("certifications", "replaced", "")
}

// --- Tech-watch articles ---

func (s *Service) UpsertArticle(a content.TechWatchArticle) content.TechWatchArticle {
	if a.ID == "" {
		a.ID = newID("article")
	}
	s.store.SaveCustomArticles(upsertByKey(s.store.CustomArticles(), a))
	s.notify("articles", "upserted", a.ID)
	return a
}

func (s *Service) RemoveArticle(id string) {
	custom, removed := removeByKey(s.store.CustomArticles(), id)
	if removed {
		s.store.SaveCustomArticles(custom)
		s.store.SaveHiddenArticleIDs(withoutID(s.store.HiddenArticleIDs(), id))
		s.notify("articles", "removed", id)
		return
	}
	s.store.SaveHiddenArticleIDs(withID(s.store.HiddenArticleIDs(), id))
	s.notify("articles", "hidden", id)
}

func (s *Service) RestoreArticle(id string) {
	s.store.SaveHiddenArticleIDs(withoutID(s.store.HiddenArticleIDs(), id))
	s.notify("articles", "restored", id)
}

func (s *Service) ReplaceArticles(custom []content.TechWatchArticle, hiddenIDs []string) {
	if custom != nil {
		s.store.SaveCustomArticles(custom)
	}
	if hiddenIDs != nil {
		s.store.SaveHiddenArticleIDs(hiddenIDs)
	}
	s.notify("articles", "replaced", "")
}

// --- Tech-watch profile ---

// UpdateTechWatchProfile lazily creates the custom singleton on first
// write; until then readers see the compiled-in default profile.
func (s *Service) UpdateTechWatchProfile(p content.TechWatchProfile) {
	for i := range p.SocialAccounts {
		if p.SocialAccounts[i].ID == "" {
			p.SocialAccounts[i].ID = newID("account")
		}
	}
	s.store.SaveTechWatchProfile(&p)
	s.notify("techwatch-profile", "upserted", "")
}
