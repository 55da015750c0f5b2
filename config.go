package mathify

import (
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/lumilearn/mathify-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig 从 YAML 文件读取渲染配置，文件里省略的字段保持默认值
func LoadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 从 YAML 字节解析渲染配置
func ParseConfig(data []byte) (*RenderConfig, error) {
	cfg := *types.DefaultRenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.RowSeparator == "" {
		cfg.RowSeparator = types.DefaultRenderConfig().RowSeparator
	}
	if cfg.FallbackClass == "" {
		cfg.FallbackClass = types.DefaultRenderConfig().FallbackClass
	}
	return &cfg, nil
}
