package mathify

import (
	"regexp"
	"strings"
)

// 旁白间距修复规则，按固定顺序应用。
// Go 的 regexp 不携带跨调用的匹配位置状态，包级变量可以安全共享。
var (
	caseBoundaryRe  = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	afterPunctRe    = regexp.MustCompile(`([.,!?:;])(\p{L})`)
	beforeOpenRe    = regexp.MustCompile(`(\p{L})\(`)
	afterCloseRe    = regexp.MustCompile(`\)(\p{L})`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// NormalizeNarration 修复面向语音合成的文本里缺失的间距。
//
// 依次应用，然后停止：
//  1. 小写字母紧跟大写字母之间补空格
//  2. . , ! ? : ; 之后紧跟字母时补空格
//  3. 字母紧跟 ( 之前补空格
//  4. ) 之后紧跟字母时补空格
//  5. 连续空白折叠为一个空格
//  6. 去掉首尾空白
//
// 幂等：对已归一化的文本再调用是无操作。空输入原样返回。
func NormalizeNarration(text string) string {
	if text == "" {
		return ""
	}
	text = caseBoundaryRe.ReplaceAllString(text, "$1 $2")
	text = afterPunctRe.ReplaceAllString(text, "$1 $2")
	text = beforeOpenRe.ReplaceAllString(text, "$1 (")
	text = afterCloseRe.ReplaceAllString(text, ") $1")
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
