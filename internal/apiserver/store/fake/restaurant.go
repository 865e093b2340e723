package fake

import (
	"context"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

type restaurants struct {
	ds *datastore
}

func (r *restaurants) Create(ctx context.Context, restaurant *v1.Restaurant, opts metav1.CreateOptions) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	for _, existing := range r.ds.restaurants {
		if existing.Name == restaurant.Name && existing.Location == restaurant.Location {
			return errors.WithCode(code.ErrRestaurantAlreadyExist,
				"restaurant %q at %q already exists", restaurant.Name, restaurant.Location)
		}
	}

	restaurant.ID = r.ds.nextRestaurantID
	r.ds.nextRestaurantID++
	r.ds.restaurants = append(r.ds.restaurants, restaurant)

	return nil
}

func (r *restaurants) Update(ctx context.Context, restaurant *v1.Restaurant, opts metav1.UpdateOptions) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	idx := -1
	for i, existing := range r.ds.restaurants {
		if existing.ID == restaurant.ID {
			idx = i

			continue
		}
		if existing.Name == restaurant.Name && existing.Location == restaurant.Location {
			return errors.WithCode(code.ErrRestaurantAlreadyExist,
				"restaurant %q at %q already exists", restaurant.Name, restaurant.Location)
		}
	}
	if idx < 0 {
		return errors.WithCode(code.ErrRestaurantNotFound, "restaurant %d not found", restaurant.ID)
	}
	r.ds.restaurants[idx] = restaurant

	return nil
}

func (r *restaurants) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Restaurant, error) {
	r.ds.RLock()
	defer r.ds.RUnlock()

	for _, restaurant := range r.ds.restaurants {
		if restaurant.ID == id {
			cp := *restaurant

			return &cp, nil
		}
	}

	return nil, errors.WithCode(code.ErrRestaurantNotFound, "restaurant %d not found", id)
}

func (r *restaurants) List(ctx context.Context, opts metav1.ListOptions) (*v1.RestaurantList, error) {
	r.ds.RLock()
	defer r.ds.RUnlock()

	items := make([]*v1.Restaurant, len(r.ds.restaurants))
	copy(items, r.ds.restaurants)

	return &v1.RestaurantList{
		ListMeta: metav1.ListMeta{TotalCount: int64(len(items))},
		Items:    items,
	}, nil
}

func (r *restaurants) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	r.ds.Lock()
	defer r.ds.Unlock()

	idx := -1
	for i, restaurant := range r.ds.restaurants {
		if restaurant.ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return errors.WithCode(code.ErrRestaurantNotFound, "restaurant %d not found", id)
	}

	removedMenus := map[uint64]bool{}
	keptMenus := r.ds.menus[:0]
	for _, menu := range r.ds.menus {
		if menu.RestaurantID == id {
			removedMenus[menu.ID] = true

			continue
		}
		keptMenus = append(keptMenus, menu)
	}
	r.ds.menus = keptMenus

	keptDishes := r.ds.dishes[:0]
	for _, dish := range r.ds.dishes {
		if !removedMenus[dish.MenuID] {
			keptDishes = append(keptDishes, dish)
		}
	}
	r.ds.dishes = keptDishes

	keptVotes := r.ds.votes[:0]
	for _, vote := range r.ds.votes {
		if !removedMenus[vote.MenuID] {
			keptVotes = append(keptVotes, vote)
		}
	}
	r.ds.votes = keptVotes

	r.ds.restaurants = append(r.ds.restaurants[:idx], r.ds.restaurants[idx+1:]...)

	return nil
}
