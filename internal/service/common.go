package service

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"studio-cms/internal/pkg/logger"
)

// formatTime RFC3339时间字符串，零值返回空串
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// formatTimePtr 指针版formatTime
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// removeMediaFiles 尽力删除媒体文件，失败只记日志不中断删除流程
// 绝对URL不属于本地存储，跳过
func removeMediaFiles(mediaRoot string, paths []string) {
	if mediaRoot == "" {
		return
	}
	for _, p := range paths {
		if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		full := filepath.Join(mediaRoot, filepath.Clean("/"+p))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			logger.Warn("删除媒体文件失败", zap.String("path", full), zap.Error(err))
		}
	}
}
