package main

import (
	"flag"

	"user_center/biz/config"
	"user_center/biz/db"
	"user_center/biz/handler"
	"user_center/biz/middleware"
	"user_center/biz/util/logger"
	_ "user_center/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

//	@title			user_center api
//	@version		1.0
//	@description	minimal account backend: register, login, account CRUD

// NewEngine builds the hertz engine with the middleware suite and the route
// table. Exported so the end-to-end tests can run against the real engine.
func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = ":3000"
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)

	u := h.Group("/user")
	u.POST("", handler.CreateAccount)
	u.POST("/login", handler.Login)
	u.GET("", handler.ListAccounts)
	u.GET("/:id", handler.GetAccount)
	u.PATCH("/:id", handler.UpdateAccount)
	u.DELETE("/:id", handler.DeleteAccount)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	return h
}

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "deploy config path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	NewEngine().Spin()
}
