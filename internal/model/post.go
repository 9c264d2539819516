package model

import (
	"strings"
	"time"
)

// Post 博客文章；content 为存储态 HTML，markdown_content 保留原始 Markdown（HTML 直写文章为空）
type Post struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"type:text;not null"`
	Category string `json:"category" gorm:"type:text;not null"` // 入库前统一大写
	Color    string `json:"color" gorm:"type:text;not null"`
	Size     string `json:"size" gorm:"type:text;not null"`
	Excerpt  string `json:"excerpt" gorm:"type:text;default:''"`
	Content  string `json:"content" gorm:"type:text;not null"`
	// MarkdownContent 编辑器回填用的 Markdown 原文
	MarkdownContent string `json:"markdown_content" gorm:"type:text;default:''"`
	// MediaFiles 逗号分隔的附件路径列表
	MediaFiles string    `json:"media_files" gorm:"type:text;default:''"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_post_created"`
	UpdatedAt  time.Time `json:"updated_at"`
	// ReadTime 按正文词数推导的展示标签，如 "3 min read"
	ReadTime string `json:"read_time" gorm:"type:text;default:'1 min read'"`
}

func (Post) TableName() string { return "posts" }

// MediaList 拆分 media_files；忽略空段与首尾空白
func (p *Post) MediaList() []string {
	if p.MediaFiles == "" {
		return nil
	}
	parts := strings.Split(p.MediaFiles, ",")
	out := make([]string, 0, len(parts))
	for _, f := range parts {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// HasMarkdown 是否保留了 Markdown 原文（编辑时优先回填）
func (p *Post) HasMarkdown() bool {
	return strings.TrimSpace(p.MarkdownContent) != ""
}

// FormattedDate 卡片上的短日期，如 "Jan 02, 2006"
func (p *Post) FormattedDate() string {
	return p.CreatedAt.Format("Jan 02, 2006")
}

// FormattedDateLong 详情页的完整日期，如 "January 02, 2006"
func (p *Post) FormattedDateLong() string {
	return p.CreatedAt.Format("January 02, 2006")
}
