// Package reconcile computes the rendered content lists from three layers:
// compiled-in defaults, owner-authored custom entries, and hidden-id sets.
// Everything here is pure, no I/O, safe to run on every read.
package reconcile

import (
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/slug"
)

type Identifiable interface {
	Key() string
}

// MergeByID layers custom entries over defaults. A custom entry sharing a
// default's identifier replaces it in place; the output keeps first-seen
// order (defaults first, custom-only entries appended). Entries whose
// identifier is empty are dropped, and identifiers in hiddenIDs are
// filtered from the result without touching the layers they came from.
func MergeByID[T Identifiable](defaults, custom []T, hiddenIDs []string) []T {
	merged := make(map[string]T, len(defaults)+len(custom))
	order := make([]string, 0, len(defaults)+len(custom))

	for _, items := range [][]T{defaults, custom} {
		for _, item := range items {
			key := item.Key()
			if key == "" {
				continue
			}
			if _, seen := merged[key]; !seen {
				order = append(order, key)
			}
			merged[key] = item
		}
	}

	hidden := make(map[string]struct{}, len(hiddenIDs))
	for _, id := range hiddenIDs {
		hidden[id] = struct{}{}
	}

	out := make([]T, 0, len(order))
	for _, key := range order {
		if _, ok := hidden[key]; ok {
			continue
		}
		out = append(out, merged[key])
	}
	return out
}

// MergeSkillCategories applies MergeByID at the category level, then prunes
// each surviving category's skills against the independently-scoped hidden
// skill set. Input categories are not mutated.
func MergeSkillCategories(defaults, custom []content.SkillCategory, hiddenCategoryIDs, hiddenSkillIDs []string) []content.SkillCategory {
	categories := MergeByID(defaults, custom, hiddenCategoryIDs)

	hidden := make(map[string]struct{}, len(hiddenSkillIDs))
	for _, id := range hiddenSkillIDs {
		hidden[id] = struct{}{}
	}

	out := make([]content.SkillCategory, 0, len(categories))
	for _, category := range categories {
		kept := make([]content.Skill, 0, len(category.Skills))
		for _, s := range category.Skills {
			if _, ok := hidden[s.ID]; ok {
				continue
			}
			kept = append(kept, s)
		}
		category.Skills = kept
		out = append(out, category)
	}
	return out
}

// MergeTechWatchProfile overlays a custom profile on the default one. The
// overlay is section-wise: a zero-value section in the custom profile falls
// back to the default section.
func MergeTechWatchProfile(def content.TechWatchProfile, custom *content.TechWatchProfile) content.TechWatchProfile {
	if custom == nil {
		return def
	}
	merged := *custom
	if merged.DailyDev == (content.DailyDevProfile{}) {
		merged.DailyDev = def.DailyDev
	}
	if merged.SocialAccounts == nil {
		merged.SocialAccounts = def.SocialAccounts
	}
	if merged.FavoriteTopic == (content.FavoriteTopic{}) {
		merged.FavoriteTopic = def.FavoriteTopic
	}
	return merged
}

// FilterByCategory keeps projects whose category label matches the wanted
// one. Labels are free-form-adjacent, so comparison is always normalized
// (trim, case-fold, diacritics stripped). An empty filter keeps everything.
func FilterByCategory(projects []content.Project, category string) []content.Project {
	want := slug.NormalizeLabel(category)
	if want == "" {
		return projects
	}
	out := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if slug.NormalizeLabel(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// Categories enumerates the distinct category labels of the given projects
// in first-seen order, deduplicating on the normalized form but reporting
// the first raw spelling encountered.
func Categories(projects []content.Project) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range projects {
		norm := slug.NormalizeLabel(p.Category)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
