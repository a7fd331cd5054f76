package htmltomarkdown_test

import (
	"testing"

	"github.com/decantlabs/decant"
	"github.com/decantlabs/decant/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, html string, opts decant.ConvertOptions) string {
	t.Helper()
	conv := htmltomarkdown.NewConverter()
	md, err := conv.Convert(html, opts)
	require.NoError(t, err)
	return md
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter()
	md, err := conv.Convert("", decant.ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", md)
}

func TestConverter_BasicElements(t *testing.T) {
	t.Parallel()

	md := convert(t, "<h2>Section</h2><p>Text with <strong>bold</strong> and <em>italics</em>.</p>", decant.ConvertOptions{})

	assert.Contains(t, md, "## Section")
	assert.Contains(t, md, "**bold**")
	assert.Regexp(t, `[*_]italics[*_]`, md)
}

func TestConverter_ResolvesRelativeLinks(t *testing.T) {
	t.Parallel()

	md := convert(t, `<p><a href="/docs/intro">the docs</a></p>`, decant.ConvertOptions{
		BaseURL: "https://example.com/base/",
	})

	assert.Contains(t, md, "[the docs](https://example.com/docs/intro)")
}

func TestConverter_DropsEmptyLinks(t *testing.T) {
	t.Parallel()

	md := convert(t, `<p>before <a href="/x"></a> after</p>`, decant.ConvertOptions{})

	assert.NotContains(t, md, "](")
	assert.Contains(t, md, "before")
	assert.Contains(t, md, "after")
}

func TestConverter_Images(t *testing.T) {
	t.Parallel()

	t.Run("included and resolved", func(t *testing.T) {
		t.Parallel()
		md := convert(t, `<img src="/pic.png" alt="a picture">`, decant.ConvertOptions{
			BaseURL:       "https://example.com",
			IncludeImages: true,
		})
		assert.Contains(t, md, "![a picture](https://example.com/pic.png)")
	})

	t.Run("lazy data-src is used", func(t *testing.T) {
		t.Parallel()
		md := convert(t, `<img data-src="/lazy.png" alt="lazy">`, decant.ConvertOptions{
			BaseURL:       "https://example.com",
			IncludeImages: true,
		})
		assert.Contains(t, md, "https://example.com/lazy.png")
	})

	t.Run("stripped when disabled", func(t *testing.T) {
		t.Parallel()
		md := convert(t, `<p>text</p><img src="/pic.png" alt="a picture">`, decant.ConvertOptions{
			IncludeImages: false,
		})
		assert.NotContains(t, md, "![")
	})

	t.Run("sourceless images dropped", func(t *testing.T) {
		t.Parallel()
		md := convert(t, `<p>text</p><img alt="broken">`, decant.ConvertOptions{IncludeImages: true})
		assert.NotContains(t, md, "![")
	})
}

func TestConverter_StripsNonContent(t *testing.T) {
	t.Parallel()

	md := convert(t, `<p>keep</p><script>var x=1;</script><nav>menu</nav><form><input></form>`, decant.ConvertOptions{})

	assert.Contains(t, md, "keep")
	assert.NotContains(t, md, "var x=1;")
	assert.NotContains(t, md, "menu")
}

func TestConverter_CodeBlockLanguage(t *testing.T) {
	t.Parallel()

	md := convert(t, `<pre><code class="hljs-go">fmt.Println("hi")</code></pre>`, decant.ConvertOptions{})

	assert.Contains(t, md, "```go")
	assert.Contains(t, md, `fmt.Println("hi")`)
}

func TestConverter_Tables(t *testing.T) {
	t.Parallel()

	md := convert(t, `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`, decant.ConvertOptions{})

	assert.Contains(t, md, "| A | B |")
	assert.Contains(t, md, "| 1 | 2 |")
}
