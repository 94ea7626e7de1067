package reconcile

import (
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/slug"
)

// Service is the read side of the site: every accessor reconciles the
// compiled-in defaults with the store's custom content and hidden sets at
// call time, so callers always observe the latest saved state.
type Service struct {
	store content.Store
}

func NewService(store content.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Projects() []content.Project {
	return MergeByID(content.DefaultProjects(), s.store.CustomProjects(), s.store.HiddenProjectIDs())
}

// ProjectBySlug resolves a project detail page address: slugs are derived
// from titles, not stored.
func (s *Service) ProjectBySlug(value string) (content.Project, bool) {
	for _, p := range s.Projects() {
		if slug.Slugify(p.Title) == value {
			return p, true
		}
	}
	return content.Project{}, false
}

func (s *Service) ProjectCategories() []string {
	return Categories(s.Projects())
}

func (s *Service) Experiences() []content.Experience {
	return MergeByID(content.DefaultExperiences(), s.store.CustomExperiences(), s.store.HiddenExperienceIDs())
}

func (s *Service) SkillCategories() []content.SkillCategory {
	return MergeSkillCategories(
		content.DefaultSkillCategories(),
		s.store.CustomSkillCategories(),
		s.store.HiddenSkillCategoryIDs(),
		s.store.HiddenSkillIDs(),
	)
}

func (s *Service) Certifications() []content.Certification {
	return MergeByID(content.DefaultCertifications(), s.store.CustomCertifications(), s.store.HiddenCertificationIDs())
}

func (s *Service) Articles() []content.TechWatchArticle {
	return MergeByID(content.DefaultArticles(), s.store.CustomArticles(), s.store.HiddenArticleIDs())
}

func (s *Service) TechWatchProfile() content.TechWatchProfile {
	return MergeTechWatchProfile(content.DefaultTechWatchProfile(), s.store.CustomTechWatchProfile())
}

// SocialAccountsByPlatform groups the reconciled profile's followed
// accounts per platform, preserving their relative order.
func (s *Service) SocialAccountsByPlatform() map[content.SocialPlatform][]content.SocialAccount {
	grouped := make(map[content.SocialPlatform][]content.SocialAccount)
	for _, acc := range s.TechWatchProfile().SocialAccounts {
		grouped[acc.Platform] = append(grouped[acc.Platform], acc)
	}
	return grouped
}
