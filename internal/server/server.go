package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pldash/internal/api"
	"pldash/internal/config"
	"pldash/internal/importer"
	"pldash/internal/present"
	"pldash/internal/state"
	"pldash/internal/store"
)

// devFrontend 开发模式下前端开发服务器地址
const devFrontend = "http://localhost:5173"

// Server HTTP服务器
type Server struct {
	router    *gin.Engine
	store     *store.Store
	dashboard *state.Dashboard
	api       *api.Handler
}

// NewServer 创建服务器，并从数据库恢复最近一次上传
func NewServer(cfg *config.AppConfig, dataDir string) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sqliteStore, err := store.New(config.DBPath(cfg, dataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	dashboard := state.NewDashboard()
	coordinator := importer.NewCoordinator(sqliteStore, dashboard, importer.Options{
		HeaderLabel: cfg.Upload.HeaderLabel,
		MaxRows:     cfg.Upload.MaxRows,
	})

	if upload, err := coordinator.Restore(); err == nil {
		log.Printf("已恢复最近一次上传: %s (%d 行)", upload.Filename, upload.RowCount)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("恢复上传数据失败: %v", err)
	}

	s := &Server{
		router:    gin.Default(),
		store:     sqliteStore,
		dashboard: dashboard,
		api: api.NewHandler(sqliteStore, dashboard, coordinator, api.Options{
			MaxUploadBytes: cfg.Upload.MaxBytes,
			Thresholds:     thresholdsFrom(cfg.Thresholds),
		}),
	}
	s.setupRoutes(devMode)
	return s, nil
}

func thresholdsFrom(t config.ThresholdsConfig) present.Thresholds {
	return present.Thresholds{
		PrimeCost:     t.PrimeCost,
		COGSPercent:   t.COGSPercent,
		LaborPercent:  t.LaborPercent,
		Productivity:  t.Productivity,
		OvertimeHours: t.OvertimeHours,
	}
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uploaded": s.dashboard.Loaded()})
	})

	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, devFrontend+c.Request.URL.Path)
		})
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 关闭数据库
func (s *Server) Close() error {
	return s.store.Close()
}
