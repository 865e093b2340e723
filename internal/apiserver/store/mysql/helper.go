package mysql

import (
	stderrors "errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

// MySQL 唯一键冲突错误码。
const errDuplicateEntry = 1062

// 业务唯一索引名。冲突翻译按索引名匹配，防止其他唯一列（比如元数据的
// instanceID）的 1062 被误判成业务冲突。
const (
	restaurantIdentityIndex = "idx_restaurant_name_location"
	menuRestaurantDateIndex = "idx_menu_restaurant_date"
	dishIdentityIndex       = "idx_dish_identity"
	voteEmployeeDateIndex   = "idx_vote_employee_date"
)

// isDuplicateEntryOn 判断是否给定唯一索引上的冲突。
// 1062 的报文形如 Duplicate entry 'x' for key 'vote.idx_vote_employee_date'。
func isDuplicateEntryOn(err error, indexName string) bool {
	var mysqlErr *mysql.MySQLError
	if !stderrors.As(err, &mysqlErr) || mysqlErr.Number != errDuplicateEntry {
		return false
	}

	return strings.Contains(mysqlErr.Message, indexName)
}

// translateDuplicate 把指定唯一索引上的冲突翻译成带业务码的错误，
// 其余错误归为数据库错误。
func translateDuplicate(err error, indexName string, dupCode int, format string, args ...interface{}) error {
	if isDuplicateEntryOn(err, indexName) {
		return errors.WithCode(dupCode, format, args...)
	}

	return errors.WithCode(code.ErrDatabase, "%v", err)
}
