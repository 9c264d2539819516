package markdown

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(""))
	assert.Equal(t, "", Render("   \n\t  "))
}

func TestRenderHeadingWithStableID(t *testing.T) {
	out := Render("# H")
	assert.Contains(t, out, `<h1 id="h">H</h1>`)

	// 同一输入，id 稳定
	assert.Equal(t, out, Render("# H"))
}

func TestRenderFencedCodeBlock(t *testing.T) {
	out := Render("```go\nfmt.Println(\"hi\")\n```")
	assert.Contains(t, out, "<pre><code")
	assert.Contains(t, out, "fmt.Println")
	assert.NotContains(t, out, "```", "fences must not leak into visible text")
}

func TestRenderGFMExtensions(t *testing.T) {
	table := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, table, "<table>")

	strike := Render("~~gone~~")
	assert.Contains(t, strike, "<del>gone</del>")

	tasks := Render("- [x] done\n- [ ] todo")
	assert.Contains(t, tasks, `type="checkbox"`)
}

func TestRenderCuddledList(t *testing.T) {
	// 列表紧贴段落，不留空行也要成列表
	out := Render("intro:\n- one\n- two")
	assert.Contains(t, out, "<li>one</li>")
	assert.Contains(t, out, "<li>two</li>")
}

func TestRenderRawHTMLPassthrough(t *testing.T) {
	out := Render("before\n\n<div class=\"x\">kept</div>\n\nafter")
	assert.Contains(t, out, `<div class="x">kept</div>`)
}

func TestRenderPureAndConcurrent(t *testing.T) {
	const input = "# Title\n\nsome *text* with `code`\n\n- a\n- b"
	want := Render(input)
	require.NotEmpty(t, want)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := Render(input); got != want {
					t.Errorf("render not deterministic")
					return
				}
			}
		}()
	}
	wg.Wait()
}
