package store

import (
	"context"
	"time"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
)

// MenuStore 定义菜单存储接口。
// 一家餐厅每天至多发布一份菜单，菜单及其菜品在同一事务内落库。
type MenuStore interface {
	Create(ctx context.Context, menu *v1.Menu, opts metav1.CreateOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Menu, error)
	ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.MenuList, error)
	List(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error)
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
}
