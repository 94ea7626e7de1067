package content

// Change topics broadcast on every save, one per content type. The names
// are kept stable because published snapshots and subscribers on other
// processes key on them.
const (
	TopicProjects         = "portfolio-projects-updated"
	TopicExperiences      = "portfolio-experiences-updated"
	TopicSkills           = "portfolio-skills-updated"
	TopicCertifications   = "portfolio-certifications-updated"
	TopicArticles         = "portfolio-articles-updated"
	TopicTechWatchProfile = "portfolio-tech-watch-profile-updated"
)

// Topics lists every change topic, for subscribers that want all of them.
func Topics() []string {
	return []string{
		TopicProjects,
		TopicExperiences,
		TopicSkills,
		TopicCertifications,
		TopicArticles,
		TopicTechWatchProfile,
	}
}

// Store is the persisted layer for owner-authored content. Loads never
// fail: absent or unparseable values come back empty, so corrupted local
// state cannot break rendering. Saves broadcast the matching change topic.
type Store interface {
	CustomProjects() []Project
	SaveCustomProjects(items []Project)
	HiddenProjectIDs() []string
	SaveHiddenProjectIDs(ids []string)

	CustomExperiences() []Experience
	SaveCustomExperiences(items []Experience)
	HiddenExperienceIDs() []string
	SaveHiddenExperienceIDs(ids []string)

	CustomSkillCategories() []SkillCategory
	SaveCustomSkillCategories(items []SkillCategory)
	HiddenSkillCategoryIDs() []string
	SaveHiddenSkillCategoryIDs(ids []string)
	HiddenSkillIDs() []string
	SaveHiddenSkillIDs(ids []string)

	CustomCertifications() []Certification
	SaveCustomCertifications(items []Certification)
	HiddenCertificationIDs() []string
	SaveHiddenCertificationIDs(ids []string)

	CustomArticles() []TechWatchArticle
	SaveCustomArticles(items []TechWatchArticle)
	HiddenArticleIDs() []string
	SaveHiddenArticleIDs(ids []string)

	// CustomTechWatchProfile returns nil until the owner writes one.
	CustomTechWatchProfile() *TechWatchProfile
	SaveTechWatchProfile(p *TechWatchProfile)

	// ServerVersion is the version stamp of the last applied server
	// snapshot, empty when none was ever applied.
	ServerVersion() string
	SaveServerVersion(version string)
	ClearServerVersion()

	// Subscribe registers fn for a change topic and returns a disposer.
	Subscribe(topic string, fn func()) (unsubscribe func())
}
