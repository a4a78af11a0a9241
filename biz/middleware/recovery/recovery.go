package recovery

import (
	"context"
	"net/http"

	"user_center/biz/model/dto"
	"user_center/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(handle))
}

func handle(ctx context.Context, c *app.RequestContext, err any, stack []byte) {
	hlog.CtxErrorf(ctx, "panic recovered: %v\n%s", err, stack)
	c.AbortWithStatusJSON(http.StatusInternalServerError, &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	})
}
