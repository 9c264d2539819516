package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/neon-blog/internal/model"
	"github.com/d60-Lab/neon-blog/internal/service"
	"github.com/d60-Lab/neon-blog/pkg/logger"
	"github.com/d60-Lab/neon-blog/pkg/response"
)

// mediaItem 详情页附件展示项；Kind 取 image / video
type mediaItem struct {
	URL  string
	Kind string
}

func mediaItems(p *model.Post) []mediaItem {
	var items []mediaItem
	for _, f := range p.MediaList() {
		switch {
		case hasSuffixAny(f, ".jpg", ".jpeg", ".png", ".gif", ".webp"):
			items = append(items, mediaItem{URL: "/" + f, Kind: "image"})
		case hasSuffixAny(f, ".mp4", ".webm", ".ogg"):
			items = append(items, mediaItem{URL: "/" + f, Kind: "video"})
		}
	}
	return items
}

func hasSuffixAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Home 首页：bento 卡片网格 + 最新文章头 + 快速发布表单
func (h *Handler) Home(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	latest, err := h.posts.Latest(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	latestTitle := "Welcome to Neon Blog"
	latestID := uint(1)
	if latest != nil {
		latestTitle = latest.Title
		latestID = latest.ID
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":       "Neon Blog",
		"Posts":       posts,
		"LatestTitle": latestTitle,
		"LatestID":    latestID,
		"Categories":  categoryOptions,
		"Colors":      colorOptions,
		"Sizes":       sizeOptions,
	})
}

// ShowPost 文章详情页；id 非法或不存在渲染 404 页
func (h *Handler) ShowPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not Found - Neon Blog"})
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not Found - Neon Blog"})
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{
		"Title": post.Title + " - Neon Blog",
		"Post":  post,
		"Media": mediaItems(post),
	})
}

// QuickCreate HTML 直写发布；返回新卡片片段给 htmx 插到网格头部
func (h *Handler) QuickCreate(c *gin.Context) {
	form := service.PostForm{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
		Color:    c.PostForm("color"),
		Size:     c.PostForm("size"),
		Excerpt:  c.PostForm("excerpt"),
		Content:  c.PostForm("content"),
	}
	form.MediaFiles = h.saveUploads(c)

	post, err := h.posts.CreateHTML(c.Request.Context(), form)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "card.html", gin.H{
		"Post":      post,
		"TimeLabel": "Just now",
	})
}

// DeletePost 删除文章；重复删除同一 id 返回 404
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	deleted, err := h.posts.Delete(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "post not found")
		return
	}
	c.Header("HX-Redirect", "/")
	response.Success(c, gin.H{"deleted": id})
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"status": "healthy", "posts_count": len(posts)})
}

// saveUploads 把 multipart 的 media 字段落盘；非图片/视频静默跳过，写盘失败只记日志
func (h *Handler) saveUploads(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	paths, err := h.media.SaveAll(form.File["media"])
	if err != nil {
		logger.Error("save uploads", zap.Error(err))
	}
	return paths
}
