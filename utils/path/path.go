package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑
// 從原始碼執行時回推 /project/utils/path/path.go → /project；編譯後的 binary 找不到原始碼目錄時改用工作目錄
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if ok {
		projectRoot := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
		if exists, _ := Exists(filepath.Join(projectRoot, "go.mod")); exists {
			return projectRoot
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Exists 路径是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
