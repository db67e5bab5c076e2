package router

import (
	"context"
	"net/http"

	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// HandlerFunc is the signature every domain operation exposes. The request is
// bound from the query string on GET and from the JSON body otherwise.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can enrich the context or stop
// the request with an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

type Router struct {
	Inner gin.IRouter

	ctx     context.Context
	befores []MiddlewareFunc
}

// New creates a router on top of the given base context. The context must
// already carry the configs, logger, and database handle.
func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{Inner: gin.New(), ctx: ctx}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

// Branch returns a router sharing the same underlying engine but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:   r.Inner,
		ctx:     r.ctx,
		befores: slices.Clone(r.befores),
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		req := new(Request)
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(req)
		default:
			err = gctx.ShouldBindJSON(req)
		}

		if err != nil {
			gctx.JSON(http.StatusOK, newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		ctx := xcontext.WithHTTPRequest(r.ctx, gctx.Request)
		for _, middleware := range r.befores {
			ctx, err = middleware(ctx)
			if err != nil {
				gctx.JSON(http.StatusOK, newErrorResponse(err))
				return
			}
		}

		resp, err := handler(ctx, req)
		if err != nil {
			logRequestError(ctx, gctx, err)
			gctx.JSON(http.StatusOK, newErrorResponse(err))
			return
		}

		gctx.JSON(http.StatusOK, newResponse(resp))
	}
}
