package orm

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// duplicateMarkers 各驱动唯一约束冲突的错误文本
// TranslateError未覆盖时兜底
var duplicateMarkers = []string{
	"Duplicate entry",          // mysql 1062
	"UNIQUE constraint failed", // sqlite 1555/2067
	"duplicate key value",      // postgres 23505
}

// isDuplicateError 判断是否为唯一索引冲突错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, marker := range duplicateMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
