package mathify

import (
	"fmt"
	"html"
)

// RenderedNode is the output of a Renderer for a single segment.
type RenderedNode struct {
	HTML string
	// Fallback marks nodes produced by the non-throwing fallback path.
	Fallback bool
}

// Renderer typesets one segment. Implementations are external (KaTeX
// bridge, terminal, PDF); they may fail or panic on malformed math.
// Wrap calls with SafeRender to get the mandatory fallback behavior.
type Renderer interface {
	Render(seg ContentSegment) (RenderedNode, error)
}

// SafeRender renders seg and never panics. On an error or panic from the
// renderer the raw segment content is shown escaped in a visually
// distinct italic style instead of being dropped or crashing the page.
func SafeRender(r Renderer, seg ContentSegment) (node RenderedNode) {
	class := DefaultConfig().FallbackClass
	defer func() {
		if rec := recover(); rec != nil {
			Logger.Printf("render panic on %s segment: %v", seg.Kind, rec)
			node = fallbackNode(seg, class)
		}
	}()

	node, err := r.Render(seg)
	if err != nil {
		Logger.Printf("render failed on %s segment: %v", seg.Kind, err)
		return fallbackNode(seg, class)
	}
	return node
}

// fallbackNode 渲染失败时的字面回退：原始内容转义后放进斜体节点
func fallbackNode(seg ContentSegment, class string) RenderedNode {
	return RenderedNode{
		HTML:     fmt.Sprintf(`<em class=%q>%s</em>`, class, html.EscapeString(seg.Content)),
		Fallback: true,
	}
}

// HTMLRenderer 参考渲染器：文本转义输出，Formatted 直通预渲染
// HTML，公式包进带 data-display 标记的节点交给客户端排版引擎。
type HTMLRenderer struct {
	Config *RenderConfig
}

// NewHTMLRenderer 创建 HTML 参考渲染器，config 为 nil 时使用默认配置
func NewHTMLRenderer(config *RenderConfig) *HTMLRenderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &HTMLRenderer{Config: config}
}

// Render renders one segment into an HTML snippet.
func (h *HTMLRenderer) Render(seg ContentSegment) (RenderedNode, error) {
	switch seg.Kind {
	case SegmentText:
		return RenderedNode{HTML: html.EscapeString(seg.Content)}, nil
	case SegmentFormatted:
		if seg.HTML != "" {
			return RenderedNode{HTML: seg.HTML}, nil
		}
		return RenderedNode{HTML: html.EscapeString(seg.Content)}, nil
	case SegmentMath:
		tag := "span"
		if seg.DisplayMode {
			tag = "div"
		}
		return RenderedNode{HTML: fmt.Sprintf(
			`<%s class="math" data-display="%t">%s</%s>`,
			tag, seg.DisplayMode, html.EscapeString(seg.Content), tag,
		)}, nil
	default:
		return RenderedNode{}, fmt.Errorf("unknown segment kind %d", int(seg.Kind))
	}
}
