package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/api/transport"
	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/pkg/httpcontext"
	boardUC "github.com/dailytasks/backend/usecase/board"
	tasksUC "github.com/dailytasks/backend/usecase/tasks"
)

type ListHandler struct {
	baseHandler
	tasks *tasksUC.UseCase
	board *boardUC.UseCase
}

func NewListHandler(tasks *tasksUC.UseCase, board *boardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
		board:       board,
	}
}

// @Summary List task lists
// @Tags lists
// @Router /api/v1/lists [get]
func (h *ListHandler) GetLists(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.board.Lists())
}

// @Summary Create list
// @Tags lists
// @Router /api/v1/lists [post]
func (h *ListHandler) CreateList(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var req transport.ListRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	created, err := h.tasks.CreateList(reqCtx, tasksUC.CreateListInput{Name: req.Name, Icon: req.Icon})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}
