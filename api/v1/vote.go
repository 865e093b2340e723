package v1

import (
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/idutil"
	"gorm.io/gorm"
)

// Vote 表示一名员工某一天投出的一票。(employee_id, vote_date) 组合唯一，
// 即一名员工一天只能投一票，与投给哪份菜单无关。员工身份来自外部认证
// 系统的不透明标识，这里不建模为实体。
type Vote struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	EmployeeID string    `json:"employee" gorm:"column:employee_id;type:varchar(64);not null;uniqueIndex:idx_vote_employee_date"`
	MenuID     uint64    `json:"menu" gorm:"column:menu_id;not null;index"`
	VoteDate   time.Time `json:"voteDate" gorm:"column:vote_date;type:date;not null;uniqueIndex:idx_vote_employee_date"`
}

// VoteList 是投票列表的返回结构。
type VoteList struct {
	metav1.ListMeta `json:",inline"`

	Items []*Vote `json:"items"`
}

// TallyResult 是每日计票结果：得票最高的菜单及其菜品。
type TallyResult struct {
	MenuID         uint64  `json:"menu_id"`
	RestaurantName string  `json:"restaurant_name"`
	Votes          int64   `json:"votes"`
	Dishes         []*Dish `json:"dishes"`
}

func (v *Vote) TableName() string {
	return "vote"
}

func (v *Vote) AfterCreate(tx *gorm.DB) error {
	v.InstanceID = idutil.GetInstanceID(v.ID, "vote-")

	return tx.Save(v).Error
}
