// Package segmenter 把一个歧义的原始字符串变成有序、无歧义的
// 类型化渲染指令序列。
//
// 流水线（每个阶段返回新列表，不原地修改上游输出）：
//
//	原始字符串 → DetectSpans → Group → 清洗公式 → ResolveDisplayMode
//	→ 强调格式化（可选）→ NormalizeSpacing → 片段列表
//
// 整条流水线是纯同步函数：无 I/O、无跨调用状态，可以被任意多个
// 调用方并发使用（例如按键实时预览）。任何阶段对任何字符串输入
// 都不允许 panic。
package segmenter

import (
	"github.com/lumilearn/mathify-go/internal/formatter"
	"github.com/lumilearn/mathify-go/internal/latex"
	"github.com/lumilearn/mathify-go/internal/types"
)

// Assemble 执行完整流水线
func Assemble(content string, cfg *types.RenderConfig) []types.Segment {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	if content == "" {
		return []types.Segment{}
	}

	spans := DetectSpans(content)
	segs := Group(spans, cfg)
	segs = sanitizeMath(segs)
	segs = ResolveDisplayMode(segs, cfg.ForceDisplayMode)
	if cfg.MarkdownFormatting {
		segs = applyFormatting(segs)
	}
	return NormalizeSpacing(segs)
}

// sanitizeMath 对每个公式片段的内容做结构清洗
func sanitizeMath(segs []types.Segment) []types.Segment {
	out := make([]types.Segment, len(segs))
	for i, seg := range segs {
		if seg.Kind == types.KindMath {
			seg.Content = latex.Sanitize(seg.Content)
		}
		out[i] = seg
	}
	return out
}

// applyFormatting 把含强调标记的文本片段升级为 Formatted 片段。
// 格式化失败时保持原文本片段不变（全函数约定）。
func applyFormatting(segs []types.Segment) []types.Segment {
	out := make([]types.Segment, 0, len(segs))
	for _, seg := range segs {
		if seg.Kind == types.KindText && formatter.HasMarkup(seg.Content) {
			if formatted, ok := formatter.Format(seg.Content); ok {
				out = append(out, formatted)
				continue
			}
		}
		out = append(out, seg)
	}
	return out
}
