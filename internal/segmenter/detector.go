package segmenter

import (
	"strings"

	"github.com/lumilearn/mathify-go/internal/latex"
)

// DetectSpans 从左到右扫描原始字符串，定位含数学内容的子串。
//
// 主规则：成对的 $...$ 之间是公式候选，其余是文本。$ 数量为奇数时
// 落单的 $ 连同其后的内容并入文本 — 绝不抛错，绝不丢字符。
//
// 兜底规则：整个输入里找不到任何 $ 对时，扫描第一个触发记号
// （\left、\begin{、\frac 等），记号之前是一个文本 span，记号到
// 串尾是一个公式候选。这条规则假设裸公式之后没有后续散文；
// 有的话会被并入公式候选，这是继承的行为，下游依赖它。
func DetectSpans(content string) []Span {
	if content == "" {
		return nil
	}

	spans := scanDollarPairs(content)
	for _, sp := range spans {
		if sp.IsMath {
			return spans
		}
	}
	// 没有任何 $ 对，改用触发记号兜底
	return scanTrigger(content)
}

// scanDollarPairs 按成对 $ 切分
func scanDollarPairs(content string) []Span {
	var spans []Span
	var text strings.Builder
	flushText := func() {
		if text.Len() > 0 {
			spans = append(spans, Span{IsMath: false, Text: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(content) {
		open := strings.IndexByte(content[i:], '$')
		if open == -1 {
			text.WriteString(content[i:])
			break
		}
		open += i
		closing := strings.IndexByte(content[open+1:], '$')
		if closing == -1 {
			// 落单的 $：剩余部分全部作为文本，$ 本身保留
			text.WriteString(content[i:])
			break
		}
		closing += open + 1

		text.WriteString(content[i:open])
		flushText()
		spans = append(spans, Span{IsMath: true, Text: content[open+1 : closing]})
		i = closing + 1
	}
	flushText()
	return spans
}

// scanTrigger 触发记号兜底扫描
func scanTrigger(content string) []Span {
	idx := latex.FindTrigger(content)
	if idx == -1 {
		return []Span{{IsMath: false, Text: content}}
	}
	var spans []Span
	if idx > 0 {
		spans = append(spans, Span{IsMath: false, Text: content[:idx]})
	}
	spans = append(spans, Span{IsMath: true, Text: content[idx:]})
	return spans
}
