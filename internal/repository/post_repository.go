package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/neon-blog/internal/model"
)

// PostInput 创建/更新文章的全量字段；派生字段（read_time、大写分类）由仓储计算
type PostInput struct {
	Title           string
	Category        string
	Color           string
	Size            string
	Excerpt         string
	Content         string
	MarkdownContent string
	MediaFiles      []string
}

// PostRepository 文章仓储。
// 约定：查不到不算错误，返回 (nil, nil)，由上层翻译成 404。
type PostRepository interface {
	// Init 幂等建表 + 增量列迁移 + 空表时写入演示数据
	Init(ctx context.Context) error

	// ListAll 返回全部文章，创建时间倒序
	ListAll(ctx context.Context) ([]*model.Post, error)

	// GetByID 按 id 查询；不存在返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*model.Post, error)

	// GetLatest 返回最新一篇；空表返回 (nil, nil)
	GetLatest(ctx context.Context) (*model.Post, error)

	// Create 插入并按 id 回读新行
	Create(ctx context.Context, in PostInput) (*model.Post, error)

	// Update 全字段替换并推进 updated_at；id 不存在返回 (nil, nil) 且不产生写入
	Update(ctx context.Context, id uint, in PostInput) (*model.Post, error)

	// Delete 删除行；返回是否真的删掉了一行
	Delete(ctx context.Context, id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

// ReadTime 由正文词数推导阅读时长标签：每 200 词 1 分钟，向下取整，至少 1 分钟
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func (r *postRepository) Init(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.Post{}); err != nil {
		return fmt.Errorf("migrate posts table: %w", err)
	}

	// 老库补列：每一步独立幂等，列已存在即跳过
	m := db.Migrator()
	for _, col := range []string{"markdown_content", "updated_at"} {
		if m.HasColumn(&model.Post{}, col) {
			continue
		}
		if err := m.AddColumn(&model.Post{}, col); err != nil {
			return fmt.Errorf("add column %s: %w", col, err)
		}
	}

	return r.seedIfEmpty(ctx)
}

func (r *postRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetLatest(ctx context.Context) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, in PostInput) (*model.Post, error) {
	post := &model.Post{
		Title:           in.Title,
		Category:        strings.ToUpper(in.Category),
		Color:           in.Color,
		Size:            in.Size,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		MarkdownContent: in.MarkdownContent,
		MediaFiles:      strings.Join(in.MediaFiles, ","),
		ReadTime:        ReadTime(in.Content),
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, post.ID)
}

func (r *postRepository) Update(ctx context.Context, id uint, in PostInput) (*model.Post, error) {
	res := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":            in.Title,
			"category":         strings.ToUpper(in.Category),
			"color":            in.Color,
			"size":             in.Size,
			"excerpt":          in.Excerpt,
			"content":          in.Content,
			"markdown_content": in.MarkdownContent,
			"media_files":      strings.Join(in.MediaFiles, ","),
			"read_time":        ReadTime(in.Content),
			// updated_at 由 gorm Updates 自动推进
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *postRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
