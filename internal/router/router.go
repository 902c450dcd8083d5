package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/dailytasks/backend/api/handler"
)

type Handlers struct {
	Board  *apiHandler.BoardHandler
	Task   *apiHandler.TaskHandler
	List   *apiHandler.ListHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Derived board: visible tasks plus stats and sidebar counts.
	r.GET("/api/v1/board", handlers.Board.GetBoard)

	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)
	r.POST("/api/v1/tasks/{id}/toggle", handlers.Task.ToggleTask)

	r.GET("/api/v1/lists", handlers.List.GetLists)
	r.POST("/api/v1/lists", handlers.List.CreateList)

	return r
}
