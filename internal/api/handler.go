package api

import (
	"github.com/gin-gonic/gin"

	"pldash/internal/importer"
	"pldash/internal/present"
	"pldash/internal/state"
	"pldash/internal/store"
)

// Options 处理器配置
type Options struct {
	MaxUploadBytes int64
	Thresholds     present.Thresholds
}

// Handler API 处理器
type Handler struct {
	store       *store.Store
	dashboard   *state.Dashboard
	coordinator *importer.Coordinator
	opts        Options
}

// NewHandler 创建 API 处理器；st 可为 nil（不保留上传历史）
func NewHandler(st *store.Store, dashboard *state.Dashboard, coordinator *importer.Coordinator, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 20 << 20
	}
	return &Handler{
		store:       st,
		dashboard:   dashboard,
		coordinator: coordinator,
		opts:        opts,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 上传
	router.POST("/upload", h.Upload)
	router.GET("/uploads", h.ListUploads)

	// 指标
	router.GET("/metrics", h.GetMetrics)
	router.GET("/metrics/cards", h.GetCards)
	router.POST("/metrics/calculate", h.Calculate)

	// 明细表
	router.GET("/tables/cogs", h.GetCOGSTable)
	router.GET("/tables/controllables", h.GetControllablesTable)
	router.GET("/tables/cogs-comparison", h.GetCOGSComparison)
	router.GET("/rows", h.GetRows)

	// 导出
	router.GET("/export", h.Export)
}
