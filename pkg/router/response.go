package router

import (
	"context"
	"errors"

	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

// newErrorResponse maps an error to the wire envelope. Anything that is not
// an errorx.Error is reported as Unknown so internals never leak.
func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func logRequestError(ctx context.Context, gctx *gin.Context, err error) {
	info := gctx.Request.Method + " | " + gctx.Request.URL.Path
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		xcontext.Logger(ctx).Warnf("%s | %d | %s", info, errx.Code, errx.Message)
	} else {
		xcontext.Logger(ctx).Errorf("%s | %v", info, err)
	}
}
