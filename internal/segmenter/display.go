package segmenter

import (
	"strings"

	"github.com/lumilearn/mathify-go/internal/types"
)

// ResolveDisplayMode 为每个公式片段决定行内还是块级渲染。
//
// 块级条件：联立方程组（分组阶段已标记）、内容含 \begin{ 或 \left、
// 或调用方通过 force 强制。只能往块级方向提升，已经是块级的
// 片段不会被降回行内。
func ResolveDisplayMode(segs []types.Segment, force bool) []types.Segment {
	out := make([]types.Segment, len(segs))
	for i, seg := range segs {
		if seg.Kind == types.KindMath {
			seg.DisplayMode = seg.DisplayMode || force ||
				strings.Contains(seg.Content, `\begin{`) ||
				strings.Contains(seg.Content, `\left`)
		}
		out[i] = seg
	}
	return out
}
