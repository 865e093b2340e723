package mysql

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/metrics"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

type menus struct {
	db *gorm.DB
}

func newMenus(ds *datastore) *menus {
	return &menus{ds.db}
}

// Create 在一个事务里写入菜单和全部菜品。任何一条菜品冲突都会回滚整单，
// 不留下孤立的菜单行。
func (m *menus) Create(ctx context.Context, menu *v1.Menu, opts metav1.CreateOptions) error {
	start := time.Now()
	defer func() { metrics.RecordOperation("create", "menu", time.Since(start)) }()

	dishes := menu.Dishes
	menu.Dishes = nil

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(menu).Error; err != nil {
			return translateDuplicate(err, menuRestaurantDateIndex, code.ErrMenuAlreadyPublished,
				"restaurant %d already published a menu for %s",
				menu.RestaurantID, menu.Date.Format("2006-01-02"))
		}

		for _, dish := range dishes {
			dish.MenuID = menu.ID
			if err := tx.Create(dish).Error; err != nil {
				return translateDuplicate(err, dishIdentityIndex, code.ErrDishConflict,
					"dish (%s, %s, %.2f) already exists", dish.Name, dish.Description, dish.Price)
			}
		}
		menu.Dishes = dishes

		return nil
	})
}

func (m *menus) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Menu, error) {
	menu := &v1.Menu{}
	err := m.db.WithContext(ctx).Preload("Dishes").Where("id = ?", id).First(menu).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrMenuNotFound, "menu %d not found", id)
		}

		return nil, errors.WithCode(code.ErrDatabase, "%v", err)
	}

	return menu, nil
}

func (m *menus) ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.MenuList, error) {
	ret := &v1.MenuList{}
	d := m.db.WithContext(ctx).
		Preload("Dishes").
		Where("date = ?", v1.DateOf(date)).
		Order("id asc").
		Find(&ret.Items)
	if d.Error != nil {
		return nil, errors.WithCode(code.ErrDatabase, "%v", d.Error)
	}
	ret.TotalCount = int64(len(ret.Items))

	return ret, nil
}

// Delete 删除菜单并级联清理其菜品和选票。
func (m *menus) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menu := &v1.Menu{}
		if err := tx.Where("id = ?", id).First(menu).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithCode(code.ErrMenuNotFound, "menu %d not found", id)
			}

			return errors.WithCode(code.ErrDatabase, "%v", err)
		}

		if err := tx.Where("menu_id = ?", id).Delete(&v1.Vote{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "%v", err)
		}
		if err := tx.Where("menu_id = ?", id).Delete(&v1.Dish{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "%v", err)
		}
		if err := tx.Delete(menu).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "%v", err)
		}

		return nil
	})
}

func (m *menus) List(ctx context.Context, opts metav1.ListOptions) (*v1.MenuList, error) {
	ret := &v1.MenuList{}
	d := m.db.WithContext(ctx).
		Preload("Dishes").
		Order("date desc, id asc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)
	if d.Error != nil {
		return nil, errors.WithCode(code.ErrDatabase, "%v", d.Error)
	}

	return ret, nil
}
