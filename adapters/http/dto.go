package http

import (
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
)

// The content records are wire-shaped already (their JSON tags are the
// published field names), so responses use them directly. The types below
// only cover request bodies and composite views.

// TableState is the admin view of one content table: the raw custom rows
// and the hidden-id set, before reconciliation.
type TableState[T any] struct {
	Custom    []T      `json:"custom"`
	HiddenIDs []string `json:"hiddenIds"`
}

// ReplaceTableRequest replaces a table wholesale. Nil fields are left
// untouched, so a caller can swap only the custom rows or only the hidden
// set.
type ReplaceTableRequest[T any] struct {
	Custom    []T      `json:"custom"`
	HiddenIDs []string `json:"hiddenIds"`
}

type SkillsState struct {
	Custom            []content.SkillCategory `json:"custom"`
	HiddenCategoryIDs []string                `json:"hiddenCategoryIds"`
	HiddenSkillIDs    []string                `json:"hiddenSkillIds"`
}

type ReplaceSkillsRequest struct {
	Custom            []content.SkillCategory `json:"custom"`
	HiddenCategoryIDs []string                `json:"hiddenCategoryIds"`
	HiddenSkillIDs    []string                `json:"hiddenSkillIds"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	Company string `json:"company"`
}

// SiteContent bundles every reconciled section for the single-page site's
// initial load.
type SiteContent struct {
	Projects         []content.Project          `json:"projects"`
	Categories       []string                   `json:"categories"`
	Experiences      []content.Experience       `json:"experiences"`
	SkillCategories  []content.SkillCategory    `json:"skillCategories"`
	Certifications   []content.Certification    `json:"certifications"`
	Articles         []content.TechWatchArticle `json:"techWatchArticles"`
	TechWatchProfile content.TechWatchProfile   `json:"techWatchProfile"`
}
