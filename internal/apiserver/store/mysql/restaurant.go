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

type restaurants struct {
	db *gorm.DB
}

func newRestaurants(ds *datastore) *restaurants {
	return &restaurants{ds.db}
}

func (r *restaurants) Create(ctx context.Context, restaurant *v1.Restaurant, opts metav1.CreateOptions) error {
	start := time.Now()
	defer func() { metrics.RecordOperation("create", "restaurant", time.Since(start)) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return translateDuplicate(err, restaurantIdentityIndex, code.ErrRestaurantAlreadyExist,
				"restaurant %q at %q already exists", restaurant.Name, restaurant.Location)
		}

		return nil
	})
}

func (r *restaurants) Update(ctx context.Context, restaurant *v1.Restaurant, opts metav1.UpdateOptions) error {
	start := time.Now()
	defer func() { metrics.RecordOperation("update", "restaurant", time.Since(start)) }()

	if err := r.db.WithContext(ctx).Save(restaurant).Error; err != nil {
		return translateDuplicate(err, restaurantIdentityIndex, code.ErrRestaurantAlreadyExist,
			"restaurant %q at %q already exists", restaurant.Name, restaurant.Location)
	}

	return nil
}

func (r *restaurants) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Restaurant, error) {
	restaurant := &v1.Restaurant{}
	err := r.db.WithContext(ctx).Where("id = ?", id).First(restaurant).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrRestaurantNotFound, "restaurant %d not found", id)
		}

		return nil, errors.WithCode(code.ErrDatabase, "%v", err)
	}

	return restaurant, nil
}

func (r *restaurants) List(ctx context.Context, opts metav1.ListOptions) (*v1.RestaurantList, error) {
	ret := &v1.RestaurantList{}
	d := r.db.WithContext(ctx).
		Order("id asc").
		Find(&ret.Items).
		Offset(-1).
		Limit(-1).
		Count(&ret.TotalCount)
	if d.Error != nil {
		return nil, errors.WithCode(code.ErrDatabase, "%v", d.Error)
	}

	return ret, nil
}

// Delete 删除餐厅并级联清理其菜单、菜品和相关选票。
// 迁移阶段关掉了外键约束，级联只能在这里用事务补齐。
func (r *restaurants) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant := &v1.Restaurant{}
		if err := tx.Where("id = ?", id).First(restaurant).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithCode(code.ErrRestaurantNotFound, "restaurant %d not found", id)
			}

			return errors.WithCode(code.ErrDatabase, "%v", err)
		}

		var menuIDs []uint64
		if err := tx.Model(&v1.Menu{}).Where("restaurant_id = ?", id).
			Pluck("id", &menuIDs).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "%v", err)
		}

		if len(menuIDs) > 0 {
			if err := tx.Where("menu_id IN ?", menuIDs).Delete(&v1.Vote{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, "%v", err)
			}
			if err := tx.Where("menu_id IN ?", menuIDs).Delete(&v1.Dish{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, "%v", err)
			}
			if err := tx.Where("id IN ?", menuIDs).Delete(&v1.Menu{}).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, "%v", err)
			}
		}

		if err := tx.Delete(restaurant).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "%v", err)
		}

		return nil
	})
}
