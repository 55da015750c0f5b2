package mathify

import (
	"log"
	"os"
)

// Logger 全局日志记录器，只在降级路径上使用（渲染回退等）
var Logger = log.New(os.Stderr, "[mathify] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
