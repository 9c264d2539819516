package handler

import (
	"github.com/d60-Lab/neon-blog/internal/service"
	"github.com/d60-Lab/neon-blog/internal/storage"
)

// Handler 持有页面/接口处理所需的依赖
type Handler struct {
	posts service.PostService
	media *storage.MediaStore
}

func New(posts service.PostService, media *storage.MediaStore) *Handler {
	return &Handler{posts: posts, media: media}
}

// 编辑器与快速发布表单的固定选项
var (
	categoryOptions = []string{"technology", "design", "tutorial", "opinion", "news", "tips", "tools", "showcase"}

	colorOptions = []option{
		{"neon-pink", "Pink"},
		{"neon-cyan", "Cyan"},
		{"neon-purple", "Purple"},
		{"neon-green", "Green"},
		{"neon-orange", "Orange"},
		{"neon-yellow", "Yellow"},
	}

	sizeOptions = []option{
		{"bento-small", "Small"},
		{"bento-medium", "Medium"},
		{"bento-large", "Large"},
		{"bento-tall", "Tall"},
		{"bento-wide", "Wide"},
	}
)

type option struct {
	Value string
	Label string
}
