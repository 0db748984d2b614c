package service

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

// 纯数字的标识符按ID处理，其余按slug或username处理
var numericPattern = regexp.MustCompile(`^\d+$`)

// IsNumericIdentifier 判断路径标识符是否是纯数字ID
func IsNumericIdentifier(identifier string) bool {
	return numericPattern.MatchString(identifier)
}

// formatTime 统一输出UTC的RFC3339时间
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatTimePtr 空指针返回空串，交给omitempty省略
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// executeTransaction 执行事务的辅助函数
func executeTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
