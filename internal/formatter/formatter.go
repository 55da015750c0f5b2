// Package formatter 把含轻量 markdown 强调标记的文本渲染为
// Formatted 片段：Content 是抽取出的纯文本，HTML 是行内标记。
//
// 公式和纯文本之外的第三种片段来源。渲染失败时向调用方报告
// 失败，由上游降级为纯文本片段。
package formatter

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/lumilearn/mathify-go/internal/types"
)

// markdownOptions goldmark 扩展配置
var markdownOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough, // ~~删除线~~
	),
}

// emphasisMarkers 强调标记，出现任意一个才值得走 goldmark
var emphasisMarkers = []string{"**", "__", "~~", "`", "*", "_"}

// HasMarkup 检查文本是否包含强调标记
func HasMarkup(content string) bool {
	for _, marker := range emphasisMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Format 把文本渲染为 Formatted 片段。
//
// 渲染结果不含任何标签（标记没有成对闭合等情况）或抽取不出
// 纯文本时返回 ok=false，调用方保持原文本片段。
func Format(content string) (types.Segment, bool) {
	md := goldmark.New(markdownOptions...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return types.Segment{}, false
	}
	html := strings.TrimSpace(buf.String())
	html = strings.TrimPrefix(html, "<p>")
	html = strings.TrimSuffix(html, "</p>")

	// goldmark 会转义字面 <，渲染结果里出现 < 说明产生了真正的标签
	if !strings.Contains(html, "<") {
		return types.Segment{}, false
	}

	plain := extractText(content)
	if plain == "" {
		return types.Segment{}, false
	}

	return types.Segment{
		Kind:    types.KindFormatted,
		Content: plain,
		HTML:    html,
	}, true
}

// extractText 遍历 AST 收集纯文本（丢掉强调标记本身）
func extractText(content string) string {
	md := goldmark.New(markdownOptions...)
	source := []byte(content)
	node := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
