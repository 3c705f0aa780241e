package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"studio-cms/internal/api/handler"
	"studio-cms/internal/api/middleware"
	"studio-cms/internal/pkg/config"
	"studio-cms/internal/repository"
	"studio-cms/internal/service"
	"studio-cms/pkg/responses"
)

// Setup 设置路由
func Setup(cfg *config.Config) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 获取数据库连接
	db := cfg.DB.(*gorm.DB)

	baseURL := cfg.Storage.BaseURL
	mediaRoot := cfg.Storage.MediaRoot
	responder := responses.NewResponder(cfg.Server.Debug)

	// 初始化Repository
	projectRepo := repository.NewProjectRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	pressRepo := repository.NewPressRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	heroRepo := repository.NewHeroProjectRepository(db)
	statRepo := repository.NewStatRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// 初始化Service
	projectService := service.NewProjectService(projectRepo, baseURL, mediaRoot)
	awardService := service.NewAwardService(projectRepo)
	blogService := service.NewBlogService(blogRepo, baseURL, mediaRoot)
	pressService := service.NewPressService(pressRepo, baseURL, mediaRoot)
	testimonialService := service.NewTestimonialService(testimonialRepo, baseURL, mediaRoot)
	homeService := service.NewHomeService(heroRepo, statRepo, baseURL, mediaRoot)
	aboutService := service.NewAboutService(aboutRepo, baseURL, mediaRoot)
	contactService := service.NewContactService(contactRepo)

	// 初始化Handler
	projectHandler := handler.NewProjectHandler(projectService, responder)
	awardHandler := handler.NewAwardHandler(awardService, responder)
	blogHandler := handler.NewBlogHandler(blogService, responder)
	pressHandler := handler.NewPressHandler(pressService, responder)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService, responder)
	homeHandler := handler.NewHomeHandler(homeService, responder)
	aboutHandler := handler.NewAboutHandler(aboutService, responder)
	contactHandler := handler.NewContactHandler(contactService, responder)

	// 公开接口
	api := r.Group("/api")
	{
		groupProjects := api.Group("/projects")
		{
			groupProjects.GET("", projectHandler.List)
			groupProjects.GET("/featured", projectHandler.ListFeatured)
			groupProjects.GET("/categories", projectHandler.ListCategories)
			groupProjects.GET("/years", projectHandler.ListYears)
			groupProjects.GET("/stats", projectHandler.Stats)
			groupProjects.GET("/category/:category", projectHandler.ListByCategory)
			groupProjects.GET("/slug/:slug", projectHandler.GetBySlug)
			groupProjects.GET("/:id", projectHandler.GetByID)
			groupProjects.GET("/:id/similar", projectHandler.ListSimilar)
		}

		groupAwards := api.Group("/awards")
		{
			groupAwards.GET("", awardHandler.List)
			groupAwards.GET("/featured", awardHandler.ListFeatured)
			groupAwards.GET("/years", awardHandler.ListYears)
			groupAwards.GET("/:id", awardHandler.GetByID)
		}

		groupPress := api.Group("/press")
		{
			groupPress.GET("", pressHandler.List)
			groupPress.GET("/featured", pressHandler.ListFeatured)
			groupPress.GET("/:id", pressHandler.GetByID)
		}

		groupTestimonials := api.Group("/testimonials")
		{
			groupTestimonials.GET("", testimonialHandler.List)
			groupTestimonials.GET("/featured", testimonialHandler.ListFeatured)
		}
		// 旧版前端的精选评价路径，保留
		api.GET("/featured", testimonialHandler.ListFeatured)

		groupBlogs := api.Group("/blogs")
		{
			groupBlogs.GET("", blogHandler.List)
			groupBlogs.GET("/categories", blogHandler.ListCategories)
			groupBlogs.GET("/:slug", blogHandler.GetBySlug)
			groupBlogs.GET("/:slug/recent", blogHandler.ListRecent)
		}

		api.GET("/hero-projects", homeHandler.ListHeroProjects)
		api.GET("/hero-projects/:id", homeHandler.GetHeroProject)
		api.GET("/stats", homeHandler.ListStats)

		api.GET("/about-section", aboutHandler.ListSections)
		groupAboutUs := api.Group("/about-us")
		{
			groupAboutUs.GET("/team", aboutHandler.ListTeamMembers)
			groupAboutUs.GET("/timeline", aboutHandler.ListTimelineItems)
			groupAboutUs.GET("/missions", aboutHandler.ListMissions)
		}

		// 联系表单（历史上存在新旧两个路径，均保留）
		api.POST("/createcontact", contactHandler.Create)
		api.POST("/v1/createcontact", contactHandler.Create)
	}

	// 后台接口（认证由外层网关处理）
	admin := r.Group("/api/admin")
	{
		groupAdminProjects := admin.Group("/projects")
		{
			groupAdminProjects.GET("", projectHandler.AdminList)
			groupAdminProjects.GET("/:id", projectHandler.AdminGet)
			groupAdminProjects.POST("", projectHandler.Create)
			groupAdminProjects.PUT("/:id", projectHandler.Update)
			groupAdminProjects.DELETE("/:id", projectHandler.Delete)
		}

		groupAdminBlogs := admin.Group("/blogs")
		{
			groupAdminBlogs.GET("", blogHandler.AdminList)
			groupAdminBlogs.GET("/:id", blogHandler.AdminGet)
			groupAdminBlogs.POST("", blogHandler.Create)
			groupAdminBlogs.PUT("/:id", blogHandler.Update)
			groupAdminBlogs.DELETE("/:id", blogHandler.Delete)
		}

		groupAdminPress := admin.Group("/press")
		{
			groupAdminPress.GET("", pressHandler.AdminList)
			groupAdminPress.GET("/:id", pressHandler.AdminGet)
			groupAdminPress.POST("", pressHandler.Create)
			groupAdminPress.PUT("/:id", pressHandler.Update)
			groupAdminPress.DELETE("/:id", pressHandler.Delete)
		}

		groupAdminTestimonials := admin.Group("/testimonials")
		{
			groupAdminTestimonials.GET("", testimonialHandler.AdminList)
			groupAdminTestimonials.GET("/:id", testimonialHandler.AdminGet)
			groupAdminTestimonials.POST("", testimonialHandler.Create)
			groupAdminTestimonials.PUT("/:id", testimonialHandler.Update)
			groupAdminTestimonials.DELETE("/:id", testimonialHandler.Delete)
		}

		groupAdminHero := admin.Group("/hero-projects")
		{
			groupAdminHero.GET("", homeHandler.AdminListHeroProjects)
			groupAdminHero.GET("/:id", homeHandler.AdminGetHeroProject)
			groupAdminHero.POST("", homeHandler.CreateHeroProject)
			groupAdminHero.PUT("/:id", homeHandler.UpdateHeroProject)
			groupAdminHero.DELETE("/:id", homeHandler.DeleteHeroProject)
		}

		groupAdminStats := admin.Group("/stats")
		{
			groupAdminStats.GET("", homeHandler.AdminListStats)
			groupAdminStats.GET("/:id", homeHandler.AdminGetStat)
			groupAdminStats.POST("", homeHandler.CreateStat)
			groupAdminStats.PUT("/:id", homeHandler.UpdateStat)
			groupAdminStats.DELETE("/:id", homeHandler.DeleteStat)
		}

		groupAdminSections := admin.Group("/about-sections")
		{
			groupAdminSections.GET("", aboutHandler.AdminListSections)
			groupAdminSections.GET("/:id", aboutHandler.AdminGetSection)
			groupAdminSections.POST("", aboutHandler.CreateSection)
			groupAdminSections.PUT("/:id", aboutHandler.UpdateSection)
			groupAdminSections.DELETE("/:id", aboutHandler.DeleteSection)
		}

		groupAdminTeam := admin.Group("/team-members")
		{
			groupAdminTeam.GET("", aboutHandler.AdminListTeamMembers)
			groupAdminTeam.GET("/:id", aboutHandler.AdminGetTeamMember)
			groupAdminTeam.POST("", aboutHandler.CreateTeamMember)
			groupAdminTeam.PUT("/:id", aboutHandler.UpdateTeamMember)
			groupAdminTeam.DELETE("/:id", aboutHandler.DeleteTeamMember)
		}

		groupAdminTimeline := admin.Group("/timeline")
		{
			groupAdminTimeline.GET("", aboutHandler.AdminListTimelineItems)
			groupAdminTimeline.GET("/:id", aboutHandler.AdminGetTimelineItem)
			groupAdminTimeline.POST("", aboutHandler.CreateTimelineItem)
			groupAdminTimeline.PUT("/:id", aboutHandler.UpdateTimelineItem)
			groupAdminTimeline.DELETE("/:id", aboutHandler.DeleteTimelineItem)
		}

		groupAdminMissions := admin.Group("/missions")
		{
			groupAdminMissions.GET("", aboutHandler.AdminListMissions)
			groupAdminMissions.GET("/:id", aboutHandler.AdminGetMission)
			groupAdminMissions.POST("", aboutHandler.CreateMission)
			groupAdminMissions.PUT("/:id", aboutHandler.UpdateMission)
			groupAdminMissions.DELETE("/:id", aboutHandler.DeleteMission)
		}

		groupAdminContact := admin.Group("/contact")
		{
			groupAdminContact.GET("", contactHandler.AdminList)
			groupAdminContact.GET("/:id", contactHandler.AdminGet)
			groupAdminContact.PUT("/:id/status", contactHandler.UpdateStatus)
			groupAdminContact.PUT("/:id/notes", contactHandler.UpdateNotes)
			groupAdminContact.DELETE("/:id", contactHandler.Delete)
		}
	}

	return r
}
