package latex

import "strings"

// TriggerTokens 标志着裸 LaTeX（无 $ 定界符）开始的固定记号，
// 按扫描优先级排列。只在整个输入里找不到任何 $...$ 对时使用。
var TriggerTokens = []string{
	`\left`,
	`\begin{`,
	`\frac`,
	`\sqrt`,
	`\(`,
	`\[`,
	`\pm`,
	`\times`,
	`\\`,
	`$`,
}

// FindTrigger 返回最早出现的触发记号位置，找不到返回 -1。
//
// 多个记号出现时取位置最靠前的；位置相同（\left 与 \le 之类
// 不会发生，但 \\ 与 \left 可能同起点）时按 TriggerTokens 的
// 顺序优先。
func FindTrigger(s string) int {
	first := -1
	for _, token := range TriggerTokens {
		idx := strings.Index(s, token)
		if idx == -1 {
			continue
		}
		if first == -1 || idx < first {
			first = idx
		}
	}
	return first
}

// HasTrigger 检查字符串是否包含任意触发记号
func HasTrigger(s string) bool {
	return FindTrigger(s) != -1
}
