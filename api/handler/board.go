package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/domain"
	"github.com/dailytasks/backend/pkg/httpcontext"
	boardUC "github.com/dailytasks/backend/usecase/board"
)

type BoardHandler struct {
	baseHandler
	uc *boardUC.UseCase
}

func NewBoardHandler(uc *boardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Derive the board for a view and filter set
// @Tags board
// @Router /api/v1/board [get]
func (h *BoardHandler) GetBoard(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view := queryString(ctx, "view", domain.ViewToday)
	filters := parseFilters(ctx)

	h.respondSuccess(ctx, http.StatusOK, h.uc.Query(reqCtx, view, filters))
}

func parseFilters(ctx *fasthttp.RequestCtx) domain.Filters {
	f := domain.DefaultFilters()
	f.Search = queryString(ctx, "search", "")
	f.Priority = queryString(ctx, "priority", domain.FilterAll)
	f.Status = queryString(ctx, "status", domain.FilterAll)
	f.ListID = queryString(ctx, "list_id", domain.FilterAll)
	f.SortBy = domain.SortKey(queryString(ctx, "sort_by", string(domain.SortManual)))
	f.SortOrder = domain.SortOrder(queryString(ctx, "sort_order", string(domain.SortAsc)))
	return f
}

func queryString(ctx *fasthttp.RequestCtx, key, fallback string) string {
	if v := string(ctx.QueryArgs().Peek(key)); v != "" {
		return v
	}
	return fallback
}
