// Package latex 修复结构脆弱的 LaTeX 片段，降低排版引擎抛错的概率。
//
// 设计原则：
// 1. 幂等 — 对任意字符串重复清洗与清洗一次结果相同
// 2. 全函数 — 对任意输入都返回结果，绝不 panic
// 3. 只修已有结构 — 不补全缺失的 \right（已知的未修复场景）
package latex

import "strings"

// rightTerminators \right 后合法的定界符字符
const rightTerminators = ".)]}"

// Sanitize 依次应用两条重写规则：
// 1. \left 后面的裸左花括号转义：\left{ → \left\{
// 2. 未终结的 \right 补一个不可见定界符：\right → \right.
func Sanitize(content string) string {
	return terminateRight(escapeLeftBrace(content))
}

// escapeLeftBrace 把紧跟 \left 的字面 { 转义为 \{
//
// \left\{ 中 \left 之后是反斜杠而非 {，所以直接替换天然幂等。
func escapeLeftBrace(s string) string {
	return strings.ReplaceAll(s, `\left{`, `\left\{`)
}

// terminateRight 给未终结的 \right 记号补一个 "."
//
// 手动扫描而不用正则：正则替换会消耗 \right 之后的那个字符，
// 连续出现的 \right\right 会漏掉第二个，破坏幂等性。
// \right 后紧跟字母说明是更长的命令（如 \rightarrow），跳过。
func terminateRight(s string) string {
	const token = `\right`
	idx := strings.Index(s, token)
	if idx == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	pos := 0
	for {
		next := strings.Index(s[pos:], token)
		if next == -1 {
			b.WriteString(s[pos:])
			return b.String()
		}
		next += pos
		after := next + len(token)
		b.WriteString(s[pos:after])

		switch {
		case after >= len(s):
			// 字符串末尾的 \right
			b.WriteByte('.')
		case isASCIILetter(s[after]):
			// \rightarrow 等更长命令的一部分，不是 \right 记号
		case strings.IndexByte(rightTerminators, s[after]) >= 0:
			// 已经终结
		default:
			b.WriteByte('.')
		}
		pos = after
	}
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
