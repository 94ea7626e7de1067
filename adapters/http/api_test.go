package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/nmorandeau/portfolio-os/adapters/persistence"
	contactUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/contact"
	curateUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/curate"
	reconcileUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/reconcile"
	snapshotUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type APITestSuite struct {
	suite.Suite
	Router     *gin.Engine
	store      *persistence.Store
	publishDir string
}

func (s *APITestSuite) SetupTest() {
	appLogger := logger.NewNop()
	s.store = persistence.NewMemStore(appLogger)
	s.publishDir = s.T().TempDir()

	reconciler := reconcileUC.NewService(s.store)
	snapshots := snapshotUC.NewService(s.store, appLogger)
	curator := curateUC.NewService(s.store, nil, appLogger)

	var cfg config.Config
	cfg.Contact.Email = "owner@example.com"
	contacts := contactUC.NewService(cfg, appLogger)

	contentHandler := NewContentHandler(reconciler, appLogger)
	curateHandler := NewCurateHandler(curator, s.store, appLogger)
	snapshotHandler := NewSnapshotHandler(snapshots, s.publishDir, appLogger)
	contactHandler := NewContactHandler(contacts, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/content", contentHandler.GetSiteContent)
			public.GET("/projects", contentHandler.GetProjects)
			public.GET("/projects/categories", contentHandler.GetProjectCategories)
			public.GET("/projects/:slug", contentHandler.GetProjectBySlug)
			public.GET("/skills", contentHandler.GetSkillCategories)
			public.GET("/tech-watch", contentHandler.GetTechWatch)
			public.POST("/contact", contactHandler.Send)
		}
		admin := api.Group("/admin")
		{
			projects := admin.Group("/projects")
			{
				projects.GET("", curateHandler.GetProjectsState)
				projects.PUT("", curateHandler.ReplaceProjects)
				projects.POST("", curateHandler.UpsertProject)
				projects.DELETE("/:id", curateHandler.RemoveProject)
				projects.POST("/:id/restore", curateHandler.RestoreProject)
			}
			admin.GET("/snapshot", snapshotHandler.Export)
			admin.POST("/snapshot", snapshotHandler.Import)
			admin.POST("/publish", snapshotHandler.Publish)
		}
	}

	s.Router = router
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *APITestSuite) Test_GetContent_ServesDefaults() {
	rr := s.do(http.MethodGet, "/api/content", nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var payload struct {
		Projects   []content.Project `json:"projects"`
		Categories []string          `json:"categories"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Len(s.T(), payload.Projects, len(content.DefaultProjects()))
	assert.NotEmpty(s.T(), payload.Categories)
}

func (s *APITestSuite) Test_GetProjects_CategoryFilter() {
	rr := s.do(http.MethodGet, "/api/projects?category=IA", nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var projects []content.Project
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &projects))
	for _, p := range projects {
		assert.Equal(s.T(), content.CategoryIA, p.Category)
	}
	assert.NotEmpty(s.T(), projects)
}

func (s *APITestSuite) Test_GetProjectBySlug_NotFound() {
	rr := s.do(http.MethodGet, "/api/projects/no-such-project", nil)

	assert.Equal(s.T(), http.StatusNotFound, rr.Code)
}

func (s *APITestSuite) Test_AdminProjectLifecycle() {
	// Create.
	rr := s.do(http.MethodPost, "/api/admin/projects", content.Project{Title: "Nouveau projet", Category: "web"})
	s.Require().Equal(http.StatusOK, rr.Code)

	var created content.Project
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &created))
	s.Require().NotEmpty(created.ID)

	// Visible in the reconciled list.
	rr = s.do(http.MethodGet, "/api/projects", nil)
	var projects []content.Project
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &projects))
	assert.Equal(s.T(), created.ID, projects[len(projects)-1].ID)

	// Soft-delete a default, hard-delete the custom one.
	defaultID := content.DefaultProjects()[0].ID
	s.Require().Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/admin/projects/"+defaultID, nil).Code)
	s.Require().Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/admin/projects/"+created.ID, nil).Code)

	assert.Contains(s.T(), s.store.HiddenProjectIDs(), defaultID)
	assert.Empty(s.T(), s.store.CustomProjects())

	// Restore the default.
	s.Require().Equal(http.StatusNoContent, s.do(http.MethodPost, "/api/admin/projects/"+defaultID+"/restore", nil).Code)
	assert.NotContains(s.T(), s.store.HiddenProjectIDs(), defaultID)
}

func (s *APITestSuite) Test_AdminProjects_ReplaceAndState() {
	body := gin.H{"custom": []content.Project{{ID: "x", Title: "X"}}, "hiddenIds": []string{"1"}}
	s.Require().Equal(http.StatusNoContent, s.do(http.MethodPut, "/api/admin/projects", body).Code)

	rr := s.do(http.MethodGet, "/api/admin/projects", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var state TableState[content.Project]
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Len(s.T(), state.Custom, 1)
	assert.Equal(s.T(), []string{"1"}, state.HiddenIDs)
}

func (s *APITestSuite) Test_SnapshotExportImportRoundTrip() {
	s.store.SaveCustomProjects([]content.Project{{ID: "p1", Title: "Exported"}})

	rr := s.do(http.MethodGet, "/api/admin/snapshot", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	assert.Contains(s.T(), rr.Header().Get("Content-Disposition"), "portfolio-data.json")

	exported := rr.Body.Bytes()

	// Wipe, then import the export back.
	s.store.SaveCustomProjects(nil)
	s.Require().Empty(s.store.CustomProjects())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/snapshot", bytes.NewReader(exported))
	rr2 := httptest.NewRecorder()
	s.Router.ServeHTTP(rr2, req)

	s.Require().Equal(http.StatusOK, rr2.Code)
	assert.Equal(s.T(), "Exported", s.store.CustomProjects()[0].Title)
	assert.NotEmpty(s.T(), s.store.ServerVersion())
}

func (s *APITestSuite) Test_SnapshotImport_RejectsNonObject() {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/snapshot", bytes.NewBufferString(`[1,2]`))
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *APITestSuite) Test_Publish_WritesSnapshotFile() {
	s.store.SaveCustomProjects([]content.Project{{ID: "p1", Title: "Published"}})

	rr := s.do(http.MethodPost, "/api/admin/publish", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	raw, err := os.ReadFile(filepath.Join(s.publishDir, snapshotUC.PublishedFileName))
	s.Require().NoError(err)

	snap := snapshotUC.Normalize(raw)
	s.Require().NotNil(snap)
	assert.Equal(s.T(), "Published", snap.Projects[0].Title)
}

func (s *APITestSuite) Test_Contact_ValidationAndMailtoFallback() {
	// Missing required fields.
	rr := s.do(http.MethodPost, "/api/contact", gin.H{"name": "A"})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	// Valid message falls back to mailto with only an email configured.
	rr = s.do(http.MethodPost, "/api/contact", gin.H{
		"name": "Alice", "email": "alice@example.com", "subject": "Hello", "message": "Bonjour",
	})
	s.Require().Equal(http.StatusOK, rr.Code)

	var result contactUC.Result
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(s.T(), "mailto", result.Via)
	assert.Contains(s.T(), result.MailtoURL, "mailto:owner@example.com")
}

func (s *APITestSuite) Test_Skills_HiddenSkillFiltered() {
	s.store.SaveHiddenSkillIDs([]string{"python"})

	rr := s.do(http.MethodGet, "/api/skills", nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	var categories []content.SkillCategory
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &categories))
	for _, category := range categories {
		for _, skill := range category.Skills {
			assert.NotEqual(s.T(), "python", skill.ID)
		}
	}
}
