package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/api/transport"
	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/pkg/httpcontext"
	boardUC "github.com/dailytasks/backend/usecase/board"
	tasksUC "github.com/dailytasks/backend/usecase/tasks"
)

type TaskHandler struct {
	baseHandler
	tasks *tasksUC.UseCase
	board *boardUC.UseCase
}

func NewTaskHandler(tasks *tasksUC.UseCase, board *boardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
		board:       board,
	}
}

// @Summary List the full task collection
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.board.Tasks())
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	in, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	created, err := h.tasks.Create(reqCtx, tasksUC.CreateTaskInput(in))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}
	in, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	updated, err := h.tasks.Update(reqCtx, id, tasksUC.UpdateTaskInput(in))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleTask(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	toggled, err := h.tasks.Toggle(reqCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, toggled)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	if err := h.tasks.Delete(reqCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// taskInput is the decoded request shape shared by create and update.
type taskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	DueDate     *time.Time
	Tags        []string
	ListID      string
	Subtasks    []domain.Subtask
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx) (taskInput, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return taskInput{}, false
	}

	due, err := req.ParseDueDate()
	if err != nil {
		h.respondInvalid(ctx, "invalid due_date")
		return taskInput{}, false
	}

	return taskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		DueDate:     due,
		Tags:        req.Tags,
		ListID:      req.ListID,
		Subtasks:    req.Subtasks,
	}, true
}

func pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}
