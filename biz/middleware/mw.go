package middleware

import (
	"user_center/biz/middleware/accesslog"
	"user_center/biz/middleware/cors"
	"user_center/biz/middleware/recovery"
	"user_center/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // request id
		accesslog.New(), // access log
		cors.New(),      // cross-origin requests
	}
}
