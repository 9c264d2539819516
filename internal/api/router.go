package api

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/neon-blog/config"
	"github.com/d60-Lab/neon-blog/internal/api/handler"
	"github.com/d60-Lab/neon-blog/web"
)

// NewRouter 组装 gin 引擎：中间件、模板、静态资源与全部路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("neon-blog"))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/styles.css", func(c *gin.Context) {
		c.FileFromFS("styles.css", http.FS(web.Static()))
	})
	// 上传目录直出；孤儿文件照常可访问（设计上不回收）
	r.Static("/uploads", cfg.Uploads.Dir)

	r.GET("/", h.Home)
	r.GET("/posts/:id", h.ShowPost)
	r.GET("/editor", h.Editor)
	r.GET("/health", h.Health)

	// 写操作与实时预览共用一个令牌桶
	limited := r.Group("/", RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	{
		limited.POST("/preview", h.Preview)
		limited.POST("/posts", h.QuickCreate)
		limited.POST("/posts/create-markdown", h.CreateMarkdown)
		limited.PUT("/posts/:id/update-markdown", h.UpdateMarkdown)
		limited.DELETE("/posts/:id", h.DeletePost)
	}

	return r
}
