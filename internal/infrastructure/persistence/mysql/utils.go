package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateError 判断是否为唯一键冲突
// 优先按MySQL错误码1062判断，兜底匹配错误文本
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	return strings.Contains(err.Error(), "Duplicate entry")
}
