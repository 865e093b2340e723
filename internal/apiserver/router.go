package apiserver

import (
	"github.com/gin-gonic/gin"

	"github.com/AndriiHamasa/lunchify/internal/apiserver/config"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/control/v1/menu"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/control/v1/restaurant"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/control/v1/vote"
	srvv1 "github.com/AndriiHamasa/lunchify/internal/apiserver/service/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

func initRouter(g *gin.Engine, cfg *config.Config, srv srvv1.Service) {
	jwtStrategy := newJWTAuth(cfg)

	g.NoRoute(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "page not found"), nil)
	})

	restaurantController := restaurant.NewRestaurantController(srv)
	menuController := menu.NewMenuController(srv)
	voteController := vote.NewVoteController(srv)

	v1 := g.Group("/v1", jwtStrategy.AuthFunc())
	{
		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", middleware.Authenticated(), restaurantController.List)
			restaurants.GET(":id", middleware.Authenticated(), restaurantController.Get)
			restaurants.POST("", middleware.AdminOnly(), restaurantController.Create)
			restaurants.PUT(":id", middleware.AdminOnly(), restaurantController.Update)
			restaurants.DELETE(":id", middleware.AdminOnly(), restaurantController.Delete)
		}

		menus := v1.Group("/menu")
		{
			menus.GET("", middleware.Authenticated(), menuController.List)
			menus.GET("/current", middleware.Authenticated(), menuController.Current)
			menus.GET("/winner", middleware.Authenticated(), menuController.Winner)
			menus.GET("/:id", middleware.Authenticated(), menuController.Get)
			menus.POST("", middleware.AdminOnly(), menuController.Publish)
			menus.DELETE("/:id", middleware.AdminOnly(), menuController.Delete)
		}

		votes := v1.Group("/vote")
		{
			votes.POST("", middleware.Authenticated(), voteController.Cast)
			votes.GET("/today", middleware.AdminOnly(), voteController.ListToday)
		}
	}
}
