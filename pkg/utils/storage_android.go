//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PrepareStorage 确保 Android 应用私有目录下的存档目录存在并可写
// gdata 在 Android 上使用 /data/data/{package}/ 但不会预先创建子目录
func PrepareStorage(appName string) error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	pkg := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if pkg == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return pkg, nil
}
