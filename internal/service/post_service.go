package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/neon-blog/internal/markdown"
	"github.com/d60-Lab/neon-blog/internal/model"
	"github.com/d60-Lab/neon-blog/internal/repository"
)

// PostForm 来自表单的创建/更新载荷；MediaFiles 为已落盘的相对路径
type PostForm struct {
	Title      string `validate:"required"`
	Category   string `validate:"required"`
	Color      string `validate:"required"`
	Size       string `validate:"required"`
	Excerpt    string
	Content    string `validate:"required"`
	MediaFiles []string
}

// PostService 文章服务：入参校验 + Markdown 渲染编排，存取委托给仓储
type PostService interface {
	List(ctx context.Context) ([]*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Latest(ctx context.Context) (*model.Post, error)

	// CreateHTML 快速发布：Content 即为 HTML，不保留 Markdown 原文
	CreateHTML(ctx context.Context, form PostForm) (*model.Post, error)

	// CreateMarkdown 编辑器发布：Content 为 Markdown，渲染后入库并保留原文
	CreateMarkdown(ctx context.Context, form PostForm) (*model.Post, error)

	// UpdateMarkdown 编辑器更新：保留旧附件并追加新上传；id 不存在返回 (nil, nil)
	UpdateMarkdown(ctx context.Context, id uint, form PostForm) (*model.Post, error)

	Delete(ctx context.Context, id uint) (bool, error)
}

type postService struct {
	repo     repository.PostRepository
	validate *validator.Validate
}

func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo, validate: validator.New()}
}

func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	return s.repo.ListAll(ctx)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Latest(ctx context.Context) (*model.Post, error) {
	return s.repo.GetLatest(ctx)
}

func (s *postService) CreateHTML(ctx context.Context, form PostForm) (*model.Post, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	return s.repo.Create(ctx, repository.PostInput{
		Title:      form.Title,
		Category:   form.Category,
		Color:      form.Color,
		Size:       form.Size,
		Excerpt:    form.Excerpt,
		Content:    form.Content,
		MediaFiles: form.MediaFiles,
	})
}

func (s *postService) CreateMarkdown(ctx context.Context, form PostForm) (*model.Post, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	return s.repo.Create(ctx, repository.PostInput{
		Title:           form.Title,
		Category:        form.Category,
		Color:           form.Color,
		Size:            form.Size,
		Excerpt:         form.Excerpt,
		Content:         markdown.Render(form.Content),
		MarkdownContent: form.Content,
		MediaFiles:      form.MediaFiles,
	})
}

func (s *postService) UpdateMarkdown(ctx context.Context, id uint, form PostForm) (*model.Post, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	// 旧附件保留，新上传追加在后
	media := append(existing.MediaList(), form.MediaFiles...)
	return s.repo.Update(ctx, id, repository.PostInput{
		Title:           form.Title,
		Category:        form.Category,
		Color:           form.Color,
		Size:            form.Size,
		Excerpt:         form.Excerpt,
		Content:         markdown.Render(form.Content),
		MarkdownContent: form.Content,
		MediaFiles:      media,
	})
}

func (s *postService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}
