package v1

import (
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/idutil"
	"gorm.io/gorm"
)

// Menu 表示一家餐厅某一天发布的菜单。(restaurant_id, date) 组合唯一，
// 即一家餐厅一天最多发布一份菜单。日期由服务端时钟决定，调用方不可指定。
type Menu struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	RestaurantID uint64    `json:"restaurant" gorm:"column:restaurant_id;not null;uniqueIndex:idx_menu_restaurant_date"`
	Date         time.Time `json:"date" gorm:"column:date;type:date;not null;uniqueIndex:idx_menu_restaurant_date"`

	Dishes []*Dish `json:"dishes,omitempty" gorm:"foreignKey:MenuID"`
}

// Dish 表示菜单中的一道菜。(name, description, price) 元组全局唯一，
// 防止同一道菜被重复定义。随所属菜单一并创建和删除。
type Dish struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// (name, description, price) 的联合唯一索引在 store/mysql 迁移时创建，
	// 理由同 Restaurant：name 列来自嵌入的 ObjectMeta
	MenuID      uint64  `json:"-" gorm:"column:menu_id;not null;index"`
	Description string  `json:"description" gorm:"column:description;type:varchar(512);not null" validate:"required,min=1,max=512"`
	Price       float64 `json:"price" gorm:"column:price;type:decimal(10,2);not null" validate:"gte=0"`
}

// MenuList 是菜单列表的分页返回结构。
type MenuList struct {
	metav1.ListMeta `json:",inline"`

	Items []*Menu `json:"items"`
}

func (m *Menu) TableName() string {
	return "menu"
}

func (d *Dish) TableName() string {
	return "dish"
}

func (m *Menu) AfterCreate(tx *gorm.DB) error {
	m.InstanceID = idutil.GetInstanceID(m.ID, "menu-")

	return tx.Save(m).Error
}

func (d *Dish) AfterCreate(tx *gorm.DB) error {
	d.InstanceID = idutil.GetInstanceID(d.ID, "dish-")

	return tx.Save(d).Error
}

// DateOf 将时间归一化为 UTC 零点，作为 date 列的统一表示。
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
