package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md 共享实例；goldmark.Markdown 并发安全，Convert 无状态
var md = goldmark.New(
	// GFM: 表格 / 删除线 / 任务列表 / 自动链接，围栏代码块为 CommonMark 内建
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		// 标题生成稳定 id，锚点链接可用
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		// 文章正文允许内嵌原始 HTML
		html.WithUnsafe(),
	),
)

// Render 将 Markdown 转为 HTML 片段；空白输入返回空串。
// 纯函数：同一输入恒产出同一输出，可并发调用。
func Render(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return ""
	}
	return buf.String()
}
