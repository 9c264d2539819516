package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/neon-blog/internal/markdown"
	"github.com/d60-Lab/neon-blog/internal/service"
	"github.com/d60-Lab/neon-blog/pkg/response"
)

const previewPlaceholder = `<p class="preview-placeholder">Start typing to see preview...</p>`

// Editor Markdown 编辑器页；带 post_id 时为编辑模式，预填已有内容
func (h *Handler) Editor(c *gin.Context) {
	data := gin.H{
		"PageTitle":  "Create New Post",
		"IsEdit":     false,
		"Content":    "",
		"PostTitle":  "",
		"Category":   "",
		"Color":      "neon-cyan",
		"Size":       "bento-medium",
		"Excerpt":    "",
		"SubmitText": "Publish Post",
		"Categories": categoryOptions,
		"Colors":     colorOptions,
		"Sizes":      sizeOptions,
	}

	if raw := c.Query("post_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			post, err := h.posts.Get(c.Request.Context(), uint(id))
			if err != nil {
				response.InternalError(c, err)
				return
			}
			if post != nil {
				// 有 Markdown 原文优先回填，老的 HTML 直写文章退回 content
				content := post.Content
				if post.HasMarkdown() {
					content = post.MarkdownContent
				}
				data["PageTitle"] = "Edit: " + post.Title
				data["IsEdit"] = true
				data["PostID"] = post.ID
				data["Content"] = content
				data["PostTitle"] = post.Title
				data["Category"] = strings.ToLower(post.Category)
				data["Color"] = post.Color
				data["Size"] = post.Size
				data["Excerpt"] = post.Excerpt
				data["SubmitText"] = "Update Post"
			}
		}
	}

	data["Title"] = fmt.Sprintf("%s - Neon Blog", data["PageTitle"])
	c.HTML(http.StatusOK, "editor.html", data)
}

// Preview 实时预览：Markdown 渲染为 HTML 片段；空输入返回占位提示
func (h *Handler) Preview(c *gin.Context) {
	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(previewPlaceholder))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markdown.Render(content)))
}

// CreateMarkdown 编辑器发布；成功后 HX-Redirect 回首页
func (h *Handler) CreateMarkdown(c *gin.Context) {
	form := h.bindForm(c)
	if _, err := h.posts.CreateMarkdown(c.Request.Context(), form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	c.Header("HX-Redirect", "/")
	c.Status(http.StatusOK)
}

// UpdateMarkdown 编辑器更新；成功后 HX-Redirect 回详情页
func (h *Handler) UpdateMarkdown(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	form := h.bindForm(c)
	post, err := h.posts.UpdateMarkdown(c.Request.Context(), id, form)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	c.Header("HX-Redirect", fmt.Sprintf("/posts/%d", post.ID))
	c.Status(http.StatusOK)
}

func (h *Handler) bindForm(c *gin.Context) service.PostForm {
	return service.PostForm{
		Title:      c.PostForm("title"),
		Category:   c.PostForm("category"),
		Color:      c.PostForm("color"),
		Size:       c.PostForm("size"),
		Excerpt:    c.PostForm("excerpt"),
		Content:    c.PostForm("content"),
		MediaFiles: h.saveUploads(c),
	}
}
