package segmenter

// Span 记录扫描阶段产出的候选片段
//
// IsMath 为 true 时 Text 是去掉 $ 定界符的公式源码（显式定界）
// 或从触发记号到串尾的原始文本（启发式兜底）。
type Span struct {
	IsMath bool
	Text   string
}
