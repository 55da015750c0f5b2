package segmenter

import (
	"github.com/lumilearn/mathify-go/internal/segbuild"
	"github.com/lumilearn/mathify-go/internal/types"
	"github.com/lumilearn/mathify-go/internal/util"
)

// NormalizeSpacing 在相邻的非公式片段之间补缺失的空格。
//
// 对每对相邻片段 (A, B)：两者都不是公式、A 不以空白结尾、
// B 不以空白开头时，插入一个单空格文本分隔片段。
// 公式边界从不自动补空格 — 渲染器自带边距，行内公式
// 必须能紧贴标点。
func NormalizeSpacing(segs []types.Segment) []types.Segment {
	b := segbuild.New()
	for i, seg := range segs {
		if i > 0 && needsSeparator(segs[i-1], seg) {
			b.AppendSeparator()
		}
		b.Append(seg)
	}
	return b.Segments()
}

func needsSeparator(a, b types.Segment) bool {
	if a.Kind == types.KindMath || b.Kind == types.KindMath {
		return false
	}
	return !util.EndsWithSpace(a.Content) && !util.StartsWithSpace(b.Content)
}
