// Package mathify 把混排了散文、数学公式和轻量 markdown 强调的
// 原始教学内容字符串，切分归一化为有序的类型化片段列表。
//
// 教学内容（题干、解答、理论文本）的数学写法很不统一：有时公式
// 包在显式的 $...$ 定界符里，有时是直接粘进句子的裸 LaTeX，
// 有时一个字符串里塞了多个逻辑独立的方程（比如一个线性方程组）。
// 这个包保证下游排版引擎永远不会抛错，也不会产出视觉上坏掉的
// 结果（单词粘连、悬空的 LaTeX 分组、该堆叠的方程被渲染成行内）。
//
// 核心功能：
//   - 定位显式定界或裸触发记号标出的公式子串
//   - 多个独立方程合并为一个对齐的联立方程组块
//   - 清洗结构脆弱的 LaTeX（\left{、未终结的 \right）
//   - 按内容决定行内 / 块级渲染
//   - 补齐相邻文本片段之间缺失的空格
//
// 主要 API：
//   - Segment(): 切分归一化，返回有序片段列表
//   - NormalizeNarration(): 面向语音合成的文本间距修复
//   - SafeRender(): 渲染适配器的非抛错回退包装
//
// 示例：
//
//	segments := mathify.Segment("Solve: $x^2 = 4$")
//	for _, seg := range segments {
//	    switch seg.Kind {
//	    case mathify.SegmentText:
//	        // 普通文本
//	    case mathify.SegmentMath:
//	        // LaTeX 源码，seg.DisplayMode 决定行内还是块级
//	    case mathify.SegmentFormatted:
//	        // 预渲染的 HTML 在 seg.HTML
//	    }
//	}
//
// 整条流水线是字符串到片段列表的纯同步函数：不持有跨调用状态，
// 可以被任意多个调用方并发使用。
package mathify

import (
	"github.com/lumilearn/mathify-go/internal/segmenter"
)

// Segment 把原始内容字符串切分为有序的片段列表
//
// 参数：
//   - content: 原始内容字符串，可含 $...$ 公式、裸 LaTeX、强调标记
//   - opts: 可选配置
//
// 返回：
//   - []ContentSegment: 按阅读顺序排列的片段，空输入返回空列表
//
// 对任意输入都不会 panic；不配对的 $ 降级为纯文本。
func Segment(content string, opts ...Option) []ContentSegment {
	return segmenter.Assemble(content, applyOptions(opts...))
}

// SegmentWithConfig 用给定配置切分，config 为 nil 时使用默认配置
func SegmentWithConfig(content string, config *RenderConfig) []ContentSegment {
	if config == nil {
		config = DefaultConfig()
	}
	return segmenter.Assemble(content, config)
}
