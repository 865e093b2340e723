package code

// lunchify 业务错误（1100xx）：服务11 + 模块00 + 序号
const (
	// ErrRestaurantNotFound - 404: 餐厅不存在
	ErrRestaurantNotFound int = iota + 110001

	// ErrRestaurantAlreadyExist - 409: 同名同址餐厅已存在
	ErrRestaurantAlreadyExist

	// ErrMenuNotFound - 404: 菜单不存在
	ErrMenuNotFound

	// ErrMenuAlreadyPublished - 409: 该餐厅今日已发布菜单
	ErrMenuAlreadyPublished

	// ErrDishConflict - 409: 菜品定义与已有菜品冲突
	ErrDishConflict

	// ErrAlreadyVoted - 409: 该员工今日已投票
	ErrAlreadyVoted

	// ErrNoVotesYet - 404: 尚无任何投票，无法计票
	ErrNoVotesYet
)

func init() {
	register(ErrRestaurantNotFound, 404, "Restaurant not found")
	register(ErrRestaurantAlreadyExist, 409, "A restaurant with this name and location already exists")
	register(ErrMenuNotFound, 404, "Menu not found")
	register(ErrMenuAlreadyPublished, 409, "A menu for this restaurant on this date already exists")
	register(ErrDishConflict, 409, "A dish with the same name, description and price already exists")
	register(ErrAlreadyVoted, 409, "You have already voted today")
	register(ErrNoVotesYet, 404, "No votes have been cast yet.")
}
