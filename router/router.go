package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/controllers"
	"github.com/xyzrestro/food-billing-app/middlewares"
	"github.com/xyzrestro/food-billing-app/services"
)

func SetupRouter(db *gorm.DB, cfg *config.AppConfig, dispatcher *services.Dispatcher) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	foodCtrl := controllers.NewFoodController(db)
	billCtrl := controllers.NewBillController(db, cfg, dispatcher)
	identityCtrl := controllers.NewIdentityController()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Static front-end (order page, bill viewer assets)
	workDir, _ := os.Getwd()
	publicPath := filepath.Join(workDir, "public")
	if _, err := os.Stat(publicPath); err == nil {
		r.Static("/public", publicPath)
		r.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(publicPath, "index.html"))
		})
	} else {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/api/foods")
		})
	}

	api := r.Group("/api")
	{
		api.GET("/foods", foodCtrl.GetAllFoods)
		api.GET("/bills", billCtrl.ListBills)
		api.GET("/me", identityCtrl.Me)

		// Bill sending is the only write path; rate limit it harder.
		send := api.Group("/")
		send.Use(middlewares.NewStrictRateLimiter())
		{
			send.POST("/send-bill", billCtrl.SendBill)
		}
	}

	r.GET("/bills/:bill_id", billCtrl.ViewBill)
	r.GET("/bills/:bill_id/pdf", billCtrl.ViewBillPDF)

	return r
}
