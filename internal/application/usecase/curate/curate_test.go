package curate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmorandeau/portfolio-os/adapters/persistence"
	"github.com/nmorandeau/portfolio-os/internal/application/usecase/curate"
	"github.com/nmorandeau/portfolio-os/internal/application/usecase/reconcile"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

func newFixture(t *testing.T) (*curate.Service, *persistence.Store, *reconcile.Service) {
	t.Helper()
	store := persistence.NewMemStore(logger.NewNop())
	return curate.NewService(store, nil, logger.NewNop()), store, reconcile.NewService(store)
}

func Test_UpsertProject_AssignsIDWhenMissing(t *testing.T) {
	curator, store, _ := newFixture(t)

	saved := curator.UpsertProject(content.Project{Title: "Fresh"})

	assert.True(t, strings.HasPrefix(saved.ID, "project-"))
	assert.Equal(t, saved.ID, store.CustomProjects()[0].ID)
}

func Test_UpsertProject_ReplacesExistingCustomInPlace(t *testing.T) {
	curator, store, _ := newFixture(t)

	curator.UpsertProject(content.Project{ID: "a", Title: "one"})
	curator.UpsertProject(content.Project{ID: "b", Title: "two"})
	curator.UpsertProject(content.Project{ID: "a", Title: "one edited"})

	custom := store.CustomProjects()
	assert.Len(t, custom, 2)
	assert.Equal(t, "one edited", custom[0].Title)
	assert.Equal(t, "b", custom[1].ID)
}

func Test_RemoveProject_DefaultIsHiddenNotDeleted(t *testing.T) {
	curator, store, reconciler := newFixture(t)
	defaultID := content.DefaultProjects()[0].ID

	curator.RemoveProject(defaultID)

	assert.Contains(t, store.HiddenProjectIDs(), defaultID)
	assert.Empty(t, store.CustomProjects())
	for _, p := range reconciler.Projects() {
		assert.NotEqual(t, defaultID, p.ID)
	}
}

func Test_RemoveProject_CustomIsDeletedOutright(t *testing.T) {
	curator, store, _ := newFixture(t)

	curator.UpsertProject(content.Project{ID: "mine", Title: "Mine"})
	curator.RemoveProject("mine")

	assert.Empty(t, store.CustomProjects())
	assert.NotContains(t, store.HiddenProjectIDs(), "mine")
}

func Test_RestoreProject_UnhidesDefault(t *testing.T) {
	curator, store, reconciler := newFixture(t)
	defaultID := content.DefaultProjects()[0].ID

	curator.RemoveProject(defaultID)
	curator.RestoreProject(defaultID)

	assert.NotContains(t, store.HiddenProjectIDs(), defaultID)
	assert.Equal(t, defaultID, reconciler.Projects()[0].ID)
}

func Test_ReplaceProjects_NilFieldLeavesTableUntouched(t *testing.T) {
	curator, store, _ := newFixture(t)

	curator.UpsertProject(content.Project{ID: "keep", Title: "kept"})
	curator.ReplaceProjects(nil, []string{"1", "2"})

	assert.Len(t, store.CustomProjects(), 1)
	assert.Equal(t, []string{"1", "2"}, store.HiddenProjectIDs())

	curator.ReplaceProjects([]content.Project{}, nil)
	assert.Empty(t, store.CustomProjects())
	assert.Equal(t, []string{"1", "2"}, store.HiddenProjectIDs())
}

func Test_HideSkill_OnlyAffectsThatSkill(t *testing.T) {
	curator, _, reconciler := newFixture(t)

	curator.HideSkill("python")

	for _, category := range reconciler.SkillCategories() {
		for _, skill := range category.Skills {
			assert.NotEqual(t, "python", skill.ID)
		}
	}
	// Categories themselves survive.
	assert.Len(t, reconciler.SkillCategories(), len(content.DefaultSkillCategories()))
}

func Test_RestoreSkill(t *testing.T) {
	curator, store, _ := newFixture(t)

	curator.HideSkill("python")
	curator.RestoreSkill("python")

	assert.NotContains(t, store.HiddenSkillIDs(), "python")
}

func Test_RemoveSkillCategory_HidesDefaultCategory(t *testing.T) {
	curator, _, reconciler := newFixture(t)
	defaultID := content.DefaultSkillCategories()[0].ID

	curator.RemoveSkillCategory(defaultID)

	for _, category := range reconciler.SkillCategories() {
		assert.NotEqual(t, defaultID, category.ID)
	}
}

func Test_UpdateTechWatchProfile_AssignsAccountIDs(t *testing.T) {
	curator, store, _ := newFixture(t)

	curator.UpdateTechWatchProfile(content.TechWatchProfile{
		SocialAccounts: []content.SocialAccount{
			{Platform: content.PlatformYouTube, Name: "New channel"},
			{ID: "existing", Platform: content.PlatformTikTok, Name: "Kept"},
		},
	})

	saved := store.CustomTechWatchProfile()
	assert.NotNil(t, saved)
	assert.True(t, strings.HasPrefix(saved.SocialAccounts[0].ID, "account-"))
	assert.Equal(t, "existing", saved.SocialAccounts[1].ID)
}

func Test_UpsertCertification_RoundTrip(t *testing.T) {
	curator, store, reconciler := newFixture(t)

	saved := curator.UpsertCertification(content.Certification{Name: "CCNA", Skills: []string{"réseaux"}})

	assert.NotEmpty(t, saved.ID)
	assert.Len(t, store.CustomCertifications(), 1)

	merged := reconciler.Certifications()
	assert.Equal(t, saved.ID, merged[len(merged)-1].ID)
}
