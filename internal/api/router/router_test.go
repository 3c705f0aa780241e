package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"studio-cms/internal/pkg/config"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.DB = db

	r := Setup(cfg)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /api/projects",
		"GET /api/projects/slug/:slug",
		"GET /api/projects/:id/similar",
		"GET /api/awards/:id",
		"GET /api/testimonials",
		"GET /api/testimonials/featured",
		// 旧版前端仍在调用的精选评价路径
		"GET /api/featured",
		"GET /api/blogs/:slug/recent",
		"POST /api/createcontact",
		"POST /api/v1/createcontact",
		"GET /api/admin/projects",
		"PUT /api/admin/contact/:id/status",
	}
	for _, route := range want {
		assert.True(t, registered[route], route)
	}
}
