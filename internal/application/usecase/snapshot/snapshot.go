// Package snapshot converts the full custom-content state to and from a
// single portable JSON document: the owner's export/import format and the
// payload fetched during server sync.
package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

const SchemaVersion = 1

// PublishedFileName is the well-known name the public site fetches during
// server sync, relative to the configured publish directory.
const PublishedFileName = "portfolio-data.json"

type Snapshot struct {
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"version"`
	ExportedAt    string `json:"exportedAt"`
	Source        string `json:"source,omitempty"`
	Note          string `json:"note,omitempty"`

	Projects               []content.Project          `json:"projects"`
	HiddenProjectIDs       []string                   `json:"hiddenProjectIds"`
	Experiences            []content.Experience       `json:"experiences"`
	HiddenExperienceIDs    []string                   `json:"hiddenExperienceIds"`
	SkillCategories        []content.SkillCategory    `json:"skillCategories"`
	HiddenSkillCategoryIDs []string                   `json:"hiddenSkillCategoryIds"`
	HiddenSkillIDs         []string                   `json:"hiddenSkillIds"`
	Certifications         []content.Certification    `json:"certifications"`
	HiddenCertificationIDs []string                   `json:"hiddenCertificationIds"`
	TechWatchArticles      []content.TechWatchArticle `json:"techWatchArticles"`
	HiddenArticleIDs       []string                   `json:"hiddenArticleIds"`
	TechWatchProfile       *content.TechWatchProfile  `json:"techWatchProfile,omitempty"`
}

type Service struct {
	store  content.Store
	logger logger.Logger
}

func NewService(store content.Store, log logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// Create exports the current custom state, stamped with the wall clock as
// both version and export time.
func (s *Service) Create() *Snapshot {
	now := time.Now().UTC().Format(time.RFC3339)

	return &Snapshot{
		SchemaVersion:          SchemaVersion,
		Version:                now,
		ExportedAt:             now,
		Source:                 "admin",
		Note:                   "Export généré depuis l'interface d'administration",
		Projects:               s.store.CustomProjects(),
		HiddenProjectIDs:       s.store.HiddenProjectIDs(),
		Experiences:            s.store.CustomExperiences(),
		HiddenExperienceIDs:    s.store.HiddenExperienceIDs(),
		SkillCategories:        s.store.CustomSkillCategories(),
		HiddenSkillCategoryIDs: s.store.HiddenSkillCategoryIDs(),
		HiddenSkillIDs:         s.store.HiddenSkillIDs(),
		Certifications:         s.store.CustomCertifications(),
		HiddenCertificationIDs: s.store.HiddenCertificationIDs(),
		TechWatchArticles:      s.store.CustomArticles(),
		HiddenArticleIDs:       s.store.HiddenArticleIDs(),
		TechWatchProfile:       s.store.CustomTechWatchProfile(),
	}
}

// Normalize is the permissive boundary for untrusted documents: uploaded
// files and fetched server payloads. Only a payload that is not a JSON
// object at all yields nil. Every expected field is coerced individually,
// so a structurally wrong document degrades to an empty-but-valid snapshot
// instead of failing.
func Normalize(raw []byte) *Snapshot {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}

	version := strings.TrimSpace(coerceString(fields["version"]))
	if version == "" {
		version = time.Now().UTC().Format(time.RFC3339)
	}
	exportedAt := strings.TrimSpace(coerceString(fields["exportedAt"]))
	if exportedAt == "" {
		exportedAt = version
	}

	schemaVersion := SchemaVersion
	if n, ok := coerceNumber(fields["schemaVersion"]); ok {
		schemaVersion = int(n)
	}

	// Older exports shipped the article list under "articles".
	articles := fields["techWatchArticles"]
	if len(articles) == 0 {
		articles = fields["articles"]
	}

	return &Snapshot{
		SchemaVersion:          schemaVersion,
		Version:                version,
		ExportedAt:             exportedAt,
		Source:                 coerceString(fields["source"]),
		Note:                   coerceString(fields["note"]),
		Projects:               coerceList[content.Project](fields["projects"]),
		HiddenProjectIDs:       coerceStringList(fields["hiddenProjectIds"]),
		Experiences:            coerceList[content.Experience](fields["experiences"]),
		HiddenExperienceIDs:    coerceStringList(fields["hiddenExperienceIds"]),
		SkillCategories:        coerceList[content.SkillCategory](fields["skillCategories"]),
		HiddenSkillCategoryIDs: coerceStringList(fields["hiddenSkillCategoryIds"]),
		HiddenSkillIDs:         coerceStringList(fields["hiddenSkillIds"]),
		Certifications:         coerceList[content.Certification](fields["certifications"]),
		HiddenCertificationIDs: coerceStringList(fields["hiddenCertificationIds"]),
		TechWatchArticles:      coerceList[content.TechWatchArticle](articles),
		HiddenArticleIDs:       coerceStringList(fields["hiddenArticleIds"]),
		TechWatchProfile:       coerceProfile(fields["techWatchProfile"]),
	}
}

// Apply overwrites every store table the snapshot carries and records its
// version stamp. This is a wholesale replacement, not a merge: importing a
// snapshot supersedes prior local custom state.
func (s *Service) Apply(snap *Snapshot) {
	s.store.SaveCustomProjects(snap.Projects)
	s.store.SaveHiddenProjectIDs(snap.HiddenProjectIDs)
	s.store.SaveCustomExperiences(snap.Experiences)
	s.store.SaveHiddenExperienceIDs(snap.HiddenExperienceIDs)
	s.store.SaveCustomSkillCategories(snap.SkillCategories)
	s.store.SaveHiddenSkillCategoryIDs(snap.HiddenSkillCategoryIDs)
	s.store.SaveHiddenSkillIDs(snap.HiddenSkillIDs)
	s.store.SaveCustomCertifications(snap.Certifications)
	s.store.SaveHiddenCertificationIDs(snap.HiddenCertificationIDs)
	s.store.SaveCustomArticles(snap.TechWatchArticles)
	s.store.SaveHiddenArticleIDs(snap.HiddenArticleIDs)
	if snap.TechWatchProfile != nil {
		s.store.SaveTechWatchProfile(snap.TechWatchProfile)
	}
	s.store.SaveServerVersion(snap.Version)
	s.logger.Info("snapshot applied",
		zap.String("version", snap.Version), zap.String("source", snap.Source))
}

// Import normalizes an uploaded document and applies it. Only a payload
// that is not an object is rejected.
func (s *Service) Import(raw []byte) (*Snapshot, error) {
	snap := Normalize(raw)
	if snap == nil {
		return nil, apperror.NewInvalidInput("snapshot file is not a JSON object", nil)
	}
	s.Apply(snap)
	return snap, nil
}

// Publish writes the current custom state to the well-known static file
// the public deployment serves for server sync. Returns the written path.
func (s *Service) Publish(dir string) (string, error) {
	snap := s.Create()
	snap.Source = "publish"

	doc, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot serialize snapshot: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create publish dir: %w", err)
	}

	path := filepath.Join(dir, PublishedFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return "", fmt.Errorf("cannot write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("cannot replace snapshot file: %w", err)
	}
	return path, nil
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func coerceNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func coerceList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

// coerceStringList filters element-wise: non-string entries are dropped
// rather than discarding the whole list.
func coerceStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		// Unmarshalling null into a string is a silent no-op, so it has
		// to be rejected before the type check.
		if string(item) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func coerceProfile(raw json.RawMessage) *content.TechWatchProfile {
	if len(raw) == 0 {
		return nil
	}
	var p content.TechWatchProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
