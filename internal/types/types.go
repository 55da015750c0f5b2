package types

import "encoding/json"

// SegmentKind 表示片段的类型
type SegmentKind int

const (
	// KindText 普通文本片段
	KindText SegmentKind = iota
	// KindMath 数学公式片段（LaTeX 源码，交给排版引擎渲染）
	KindMath
	// KindFormatted 含轻量 markdown 强调的片段，带预渲染 HTML
	KindFormatted
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMath:
		return "math"
	case KindFormatted:
		return "formatted"
	default:
		return "unknown"
	}
}

// MarshalJSON 以字符串形式序列化片段类型
func (k SegmentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Segment 表示一个待渲染的内容片段
//
// 片段按输入的阅读顺序排列，每次调用都生成新的列表，
// 生成后不再修改。Content 不允许为空，唯一例外是
// 间距归一化插入的单空格分隔片段。
type Segment struct {
	Kind        SegmentKind `json:"kind"`
	Content     string      `json:"content"`
	DisplayMode bool        `json:"display_mode,omitempty"` // 仅 KindMath 有意义
	HTML        string      `json:"html,omitempty"`         // 仅 KindFormatted 有意义
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// MarkdownFormatting 是否把含强调标记的文本片段渲染为 Formatted 片段
	MarkdownFormatting bool `yaml:"markdownFormatting"`
	// ForceDisplayMode 调用方强制公式按块级渲染（居中独立成行）。
	// 只能强制为 true；联立方程组的块级模式不可被关闭。
	ForceDisplayMode bool `yaml:"forceDisplayMode"`
	// RowSeparator 联立方程组的行分隔符
	RowSeparator string `yaml:"rowSeparator"`
	// FallbackClass 渲染失败时回退节点的 CSS class
	FallbackClass string `yaml:"fallbackClass"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MarkdownFormatting: false,
		ForceDisplayMode:   false,
		RowSeparator:       ` \\ `,
		FallbackClass:      "math-fallback",
	}
}
