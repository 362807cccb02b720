package repo

import "strings"

// pageOffset skip = (page-1) * pageSize，越界入参归零
func pageOffset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// orderClause 白名单换列名，未命中回退默认列；方向只有 ASC/DESC 两个字面量
func orderClause(field string, ascending bool, allowed map[string]string, fallback string) string {
	col, ok := allowed[field]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	return col + " " + dir
}

// isDupKey 不同驱动的唯一键冲突消息各异，按关键字识别（不依赖 gorm.ErrDuplicatedKey 的版本差异）
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
