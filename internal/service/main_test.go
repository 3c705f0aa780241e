package service

import (
	"os"
	"testing"

	"studio-cms/internal/pkg/config"
	"studio-cms/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	// 部分服务路径会写日志，测试前初始化
	if err := logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
