package mysql

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

func TestTranslateDuplicateMatchesBusinessIndex(t *testing.T) {
	dup := &mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'emp-1-2025-09-01' for key 'vote.idx_vote_employee_date'",
	}

	err := translateDuplicate(dup, voteEmployeeDateIndex, code.ErrAlreadyVoted, "employee already voted")
	assert.True(t, errors.IsCode(err, code.ErrAlreadyVoted), "got %v", err)
}

// 元数据唯一列（instanceID）上的 1062 不是业务冲突，必须按数据库错误上报。
func TestTranslateDuplicateOtherUniqueColumn(t *testing.T) {
	dup := &mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry '' for key 'vote.instanceID'",
	}

	err := translateDuplicate(dup, voteEmployeeDateIndex, code.ErrAlreadyVoted, "employee already voted")
	assert.True(t, errors.IsCode(err, code.ErrDatabase), "got %v", err)
}

func TestTranslateDuplicateNonDuplicateError(t *testing.T) {
	lockErr := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}

	err := translateDuplicate(lockErr, voteEmployeeDateIndex, code.ErrAlreadyVoted, "employee already voted")
	assert.True(t, errors.IsCode(err, code.ErrDatabase), "got %v", err)
}
