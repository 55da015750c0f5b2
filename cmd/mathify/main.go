// mathify 命令行工具：从文件或 stdin 读取原始内容，
// 打印切分归一化后的片段列表，用于调试内容流水线。
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	mathify "github.com/lumilearn/mathify-go"
)

func main() {
	markdown := flag.Bool("markdown", false, "render emphasis markers into formatted segments")
	display := flag.Bool("display", false, "force display mode for math segments")
	narrate := flag.Bool("narrate", false, "normalize narration spacing instead of segmenting")
	configPath := flag.String("config", "", "path to a YAML render config")
	asJSON := flag.Bool("json", false, "print segments as JSON")
	flag.Parse()

	// GOMAXPROCS 适配容器配额；失败时沿用运行时默认值即可
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	input, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *narrate {
		fmt.Println(mathify.NormalizeNarration(input))
		return
	}

	opts := make([]mathify.Option, 0, 3)
	if *configPath != "" {
		cfg, err := mathify.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts, mathify.WithConfig(cfg))
	}
	if *markdown {
		opts = append(opts, mathify.WithMarkdownFormatting(true))
	}
	if *display {
		opts = append(opts, mathify.WithForceDisplayMode(true))
	}

	segments := mathify.Segment(input, opts...)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(segments); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	for i, seg := range segments {
		line := fmt.Sprintf("%2d  %-9s", i, seg.Kind)
		if seg.Kind == mathify.SegmentMath {
			line += fmt.Sprintf("  display=%-5t", seg.DisplayMode)
		} else {
			line += "                "
		}
		fmt.Printf("%s  %q\n", line, seg.Content)
	}
}

// readInput 从第一个位置参数指定的文件读取，没有参数时读 stdin
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
