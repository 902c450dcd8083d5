package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dailytasks/backend/pkg/httpcontext"
)

// RequestID ensures every request carries an X-Request-ID, minting one when
// the client did not send any.
func RequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		reqID := httpcontext.RequestID(ctx)
		ctx.Request.Header.Set("X-Request-ID", reqID)
		ctx.Response.Header.Set("X-Request-ID", reqID)
		next(ctx)
	}
}

// AccessLog logs one line per request with method, path, status and latency.
func AccessLog(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)

			logger.Info("request handled",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("path", ctx.Path()),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("latency", time.Since(start)),
				zap.ByteString("request_id", ctx.Response.Header.Peek("X-Request-ID")),
			)
		}
	}
}

// Chain applies middlewares right to left around the final handler.
func Chain(h fasthttp.RequestHandler, middlewares ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
