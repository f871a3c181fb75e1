package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一键冲突错误
// GORM v2在部分驱动下会翻译为gorm.ErrDuplicatedKey，
// MySQL驱动未翻译时回退到错误消息匹配（Error 1062: Duplicate entry）
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
