package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/neon-blog/pkg/logger"
)

// MediaStore 把上传文件写到 uploads/images 与 uploads/videos；
// 文件名用 uuid + 原始扩展名，避免冲突与路径注入。
type MediaStore struct {
	root string
}

func NewMediaStore(root string) (*MediaStore, error) {
	for _, sub := range []string{"images", "videos"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, err
		}
	}
	return &MediaStore{root: root}, nil
}

// subdirFor 按 Content-Type 前缀分目录；既不是图片也不是视频返回 ""
func subdirFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "images"
	case strings.HasPrefix(contentType, "video/"):
		return "videos"
	default:
		return ""
	}
}

// Save 落盘单个上传文件，返回相对路径；不接受的类型返回 ("", nil) 静默跳过
func (s *MediaStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Filename == "" {
		return "", nil
	}
	sub := subdirFor(fh.Header.Get("Content-Type"))
	if sub == "" {
		logger.Warn("skip unsupported upload",
			zap.String("filename", fh.Filename),
			zap.String("content_type", fh.Header.Get("Content-Type")))
		return "", nil
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(s.root, sub, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(dst), nil
}

// SaveAll 按上传顺序落盘，返回成功写入的相对路径列表
func (s *MediaStore) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	var paths []string
	for _, fh := range files {
		p, err := s.Save(fh)
		if err != nil {
			return paths, err
		}
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// Root 上传根目录（静态挂载用）
func (s *MediaStore) Root() string { return s.root }
