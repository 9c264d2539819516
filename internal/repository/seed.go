package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/neon-blog/internal/model"
	"github.com/d60-Lab/neon-blog/pkg/logger"
)

// samplePosts 首次启动的演示内容；仅在空表时写入一次
func samplePosts() []model.Post {
	return []model.Post{
		{
			Title:    "The Future of Web Development: HTMX and Hypermedia",
			Category: "TECHNOLOGY",
			Color:    "neon-pink",
			Size:     "bento-large",
			Excerpt:  "Exploring how HTMX is changing the way we think about building interactive web applications...",
			Content: `<p>In recent years, the web development landscape has been dominated by JavaScript frameworks like React, Vue, and Angular. But a quiet revolution is happening, led by tools like HTMX that embrace the original hypermedia model of the web.</p>
<p>HTMX allows you to access modern browser features directly from HTML, rather than using JavaScript. This means you can create dynamic, interactive web applications with significantly less code and complexity.</p>
<h2>Why HTMX?</h2>
<p>The main advantage of HTMX is simplicity. Instead of managing complex client-side state, you let the server handle the logic and return HTML fragments that HTMX swaps into your page.</p>
<p>This approach has several benefits:</p>
<ul>
<li>Smaller bundle sizes</li>
<li>Better SEO out of the box</li>
<li>Simpler mental model</li>
<li>Works with any backend language</li>
</ul>`,
			MarkdownContent: `# The Future of Web Development: HTMX and Hypermedia

In recent years, the web development landscape has been dominated by JavaScript frameworks like React, Vue, and Angular. But a quiet revolution is happening, led by tools like HTMX that embrace the original hypermedia model of the web.

HTMX allows you to access modern browser features directly from HTML, rather than using JavaScript. This means you can create dynamic, interactive web applications with significantly less code and complexity.

## Why HTMX?

The main advantage of HTMX is simplicity. Instead of managing complex client-side state, you let the server handle the logic and return HTML fragments that HTMX swaps into your page.

This approach has several benefits:

- Smaller bundle sizes
- Better SEO out of the box
- Simpler mental model
- Works with any backend language`,
			ReadTime: "5 min read",
		},
		{
			Title:    "Neon Aesthetics in Modern UI",
			Category: "DESIGN",
			Color:    "neon-cyan",
			Size:     "bento-medium",
			Excerpt:  "Why glowing colors are making a comeback...",
			Content: `<p>Neon colors have made a dramatic comeback in web design, bringing energy and personality to digital interfaces.</p>
<p>The cyberpunk aesthetic, popularized by movies and games, has influenced modern UI design trends.</p>
<h2>Key Principles</h2>
<ul>
<li>Use dark backgrounds to make colors pop</li>
<li>Add subtle glow effects with box-shadow</li>
<li>Limit your neon palette to maintain hierarchy</li>
</ul>`,
			MarkdownContent: `# Neon Aesthetics in Modern UI

Neon colors have made a dramatic comeback in web design, bringing energy and personality to digital interfaces.

The cyberpunk aesthetic, popularized by movies and games, has influenced modern UI design trends.

## Key Principles

- Use dark backgrounds to make colors pop
- Add subtle glow effects with box-shadow
- Limit your neon palette to maintain hierarchy`,
			ReadTime: "3 min read",
		},
		{
			Title:    "Quick CSS Tricks",
			Category: "TIPS",
			Color:    "neon-purple",
			Size:     "bento-small",
			Content: `<p>Here are some useful CSS tricks:</p>
<h3>Center anything with Flexbox</h3>
<pre><code>display: flex;
align-items: center;
justify-content: center;</code></pre>`,
			MarkdownContent: `# Quick CSS Tricks

Here are some useful CSS tricks:

### Center anything with Flexbox

` + "```css" + `
display: flex;
align-items: center;
justify-content: center;
` + "```",
			ReadTime: "2 min read",
		},
	}
}

// seedIfEmpty 空表检查 + 一次性写入演示文章
func (r *postRepository) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	posts := samplePosts()
	if err := r.db.WithContext(ctx).Create(&posts).Error; err != nil {
		return err
	}
	logger.Info("seeded demo posts", zap.Int("count", len(posts)))
	return nil
}
