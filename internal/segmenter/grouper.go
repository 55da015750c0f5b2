package segmenter

import (
	"strings"

	"github.com/lumilearn/mathify-go/internal/segbuild"
	"github.com/lumilearn/mathify-go/internal/types"
)

// Group 把候选 span 列表合并为片段列表。
//
// 同一输入里出现 ≥2 个显式 $...$ 公式块时视为联立方程组：
// 每块第一个 = 换成对齐锚点 &=，各行用 RowSeparator 连接，
// 整体包进 \left\{\begin{aligned} ... \end{aligned}\right.
// 并标记块级渲染。首块之前的文本归为一个前置文本片段，
// 块与块之间的文本丢弃，末块之后的非空文本归为一个尾随文本片段。
func Group(spans []Span, cfg *types.RenderConfig) []types.Segment {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}

	mathCount := 0
	for _, sp := range spans {
		if sp.IsMath && strings.TrimSpace(sp.Text) != "" {
			mathCount++
		}
	}

	switch mathCount {
	case 0:
		return groupTextOnly(spans)
	case 1:
		return groupSingle(spans)
	default:
		return groupAligned(spans, cfg)
	}
}

// groupTextOnly 没有公式候选：整个输入修剪后作为一个文本片段
func groupTextOnly(spans []Span) []types.Segment {
	var whole strings.Builder
	for _, sp := range spans {
		whole.WriteString(sp.Text)
	}
	b := segbuild.New()
	b.Append(types.Segment{
		Kind:    types.KindText,
		Content: strings.TrimSpace(whole.String()),
	})
	return b.Segments()
}

// groupSingle 恰好一个公式候选：按原顺序输出，文本修剪首尾空白
func groupSingle(spans []Span) []types.Segment {
	b := segbuild.New()
	for _, sp := range spans {
		kind := types.KindText
		if sp.IsMath {
			kind = types.KindMath
		}
		b.Append(types.Segment{
			Kind:    kind,
			Content: strings.TrimSpace(sp.Text),
		})
	}
	return b.Segments()
}

// groupAligned ≥2 个公式块：合并为一个对齐的联立方程组
func groupAligned(spans []Span, cfg *types.RenderConfig) []types.Segment {
	firstMath, lastMath := -1, -1
	for i, sp := range spans {
		if sp.IsMath && strings.TrimSpace(sp.Text) != "" {
			if firstMath == -1 {
				firstMath = i
			}
			lastMath = i
		}
	}

	var rows []string
	for _, sp := range spans[firstMath : lastMath+1] {
		if !sp.IsMath {
			continue
		}
		chunk := strings.TrimSpace(sp.Text)
		if chunk == "" {
			continue
		}
		// 第一个 = 换成对齐锚点
		rows = append(rows, strings.Replace(chunk, "=", "&=", 1))
	}

	sep := cfg.RowSeparator
	if sep == "" {
		sep = types.DefaultRenderConfig().RowSeparator
	}
	system := `\left\{\begin{aligned} ` + strings.Join(rows, sep) + ` \end{aligned}\right.`

	b := segbuild.New()
	b.Append(types.Segment{
		Kind:    types.KindText,
		Content: strings.TrimSpace(joinText(spans[:firstMath])),
	})
	b.Append(types.Segment{
		Kind:        types.KindMath,
		Content:     system,
		DisplayMode: true,
	})
	b.Append(types.Segment{
		Kind:    types.KindText,
		Content: strings.TrimSpace(joinText(spans[lastMath+1:])),
	})
	return b.Segments()
}

func joinText(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if !sp.IsMath {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}
