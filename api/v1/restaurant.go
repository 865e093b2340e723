/*
v1 包定义了午餐投票系统的资源模型（Restaurant/Menu/Dish/Vote）。
模型既作为 RESTful API 的数据交换格式，也作为 GORM 的数据库映射模型，
唯一性约束通过 gorm 的 uniqueIndex 标签下沉到数据库，保证并发写入时
由存储层产生确定性的冲突错误。
*/

package v1

import (
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/idutil"
	"gorm.io/gorm"
)

// Restaurant 表示一家餐厅。(name, location) 组合全局唯一。
type Restaurant struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// (name, location) 的联合唯一索引在 store/mysql 迁移时创建，
	// 因为 name 列来自嵌入的 ObjectMeta，无法在此处打标签
	Location string `json:"location" gorm:"column:location;type:varchar(255);not null" validate:"required,min=1,max=255"`

	Menus []*Menu `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
}

// RestaurantList 是餐厅列表的分页返回结构。
type RestaurantList struct {
	metav1.ListMeta `json:",inline"`

	Items []*Restaurant `json:"items"`
}

// TableName 指定当前模型映射的表名。
func (r *Restaurant) TableName() string {
	return "restaurant"
}

// AfterCreate 在记录创建后生成实例 ID。
func (r *Restaurant) AfterCreate(tx *gorm.DB) error {
	r.InstanceID = idutil.GetInstanceID(r.ID, "restaurant-")

	return tx.Save(r).Error
}
