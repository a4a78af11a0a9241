package trace

import (
	"context"

	"user_center/biz/util/id_gen"
	"user_center/biz/util/reqid"

	"github.com/cloudwego/hertz/pkg/app"
)

const headerKeyRequestId = "X-Request-ID"

// New assigns every request an id, honoring one supplied by the caller, and
// echoes it back in the response header.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id := c.Request.Header.Get(headerKeyRequestId)
		if id == "" {
			id = id_gen.NewID()
		}
		ctx = reqid.WithRequestID(ctx, id)
		c.Next(ctx)
		c.Header(headerKeyRequestId, id)
	}
}
