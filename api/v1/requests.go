package v1

import (
	"github.com/go-playground/validator/v10"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

var validate = validator.New()

// DishSpec 是发布菜单时提交的单道菜定义。
type DishSpec struct {
	Name        string  `json:"name" validate:"required,min=1,max=64"`
	Description string  `json:"description" validate:"required,min=1,max=512"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// PublishMenuRequest 是发布菜单的请求体。日期不可指定，由服务端决定。
type PublishMenuRequest struct {
	RestaurantID uint64     `json:"restaurant" validate:"required"`
	Dishes       []DishSpec `json:"dishes" validate:"required,min=1,dive"`
}

// CastVoteRequest 是投票请求体。员工身份取自认证令牌，不在请求体中。
type CastVoteRequest struct {
	MenuID uint64 `json:"menu" validate:"required"`
}

func (r *PublishMenuRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.WithCode(code.ErrValidation, "invalid menu publication: %v", err)
	}

	return nil
}

func (r *CastVoteRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.WithCode(code.ErrValidation, "invalid vote: %v", err)
	}

	return nil
}

func (r *Restaurant) Validate() error {
	if err := validate.Var(r.Name, "required,min=1,max=64"); err != nil {
		return errors.WithCode(code.ErrValidation, "invalid restaurant name: %v", err)
	}
	if err := validate.Var(r.Location, "required,min=1,max=255"); err != nil {
		return errors.WithCode(code.ErrValidation, "invalid restaurant location: %v", err)
	}

	return nil
}
