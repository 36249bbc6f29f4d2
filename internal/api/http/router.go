package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(adminController *AdminController, userController *UserController, roomController *RoomController, todoController *TodoController, jwtSecret string) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))
	router.Use(RequestID())

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	admin := router.Group("/admin")
	admin.POST("/login", adminController.Login)

	user := router.Group("/user")
	user.GET("/auth", userController.GetClientID)
	user.POST("/auth", userController.RegisterOrLogin)

	room := router.Group("/room")
	room.POST("", AuthJWT(jwtSecret), roomController.CreateRoom)
	room.PATCH("", roomController.SetApproval)
	room.GET("/detail", roomController.GetRoomDetail)
	room.GET("/list", roomController.ListRooms)
	room.GET("/my-list", roomController.ListMyRooms)

	todo := router.Group("/todo")
	todo.POST("", todoController.CreateTodo)
	todo.PATCH("", todoController.CheckTodo)
	todo.PATCH("/approve", todoController.ApproveTodo)
	todo.GET("/list", todoController.ListTodos)
	todo.GET("/my-list", todoController.ListRoomTodos)
	todo.POST("/room", todoController.AddTodoToRoom)

	return router
}
