package mathify

import "github.com/lumilearn/mathify-go/internal/types"

// 导出类型别名
type (
	// ContentSegment 一个待渲染的内容片段
	ContentSegment = types.Segment
	// SegmentKind 片段类型标签
	SegmentKind = types.SegmentKind
)

const (
	// SegmentText 普通文本
	SegmentText = types.KindText
	// SegmentMath 数学公式（LaTeX 源码）
	SegmentMath = types.KindMath
	// SegmentFormatted 含预渲染 HTML 的强调文本
	SegmentFormatted = types.KindFormatted
)
