package resp

import (
	"net/http"

	"user_center/biz/model/dto"
	"user_center/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func write(c *app.RequestContext, httpCode int, data any, err errs.Error) {
	if err == nil {
		c.JSON(httpCode, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	c.JSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(err.Code()),
		Message: err.Msg(),
	})
}

// httpStatus maps business errors to the status the API contract promises.
func httpStatus(bizErr errs.Error) int {
	switch {
	case errs.ErrorEqual(bizErr, errs.ParamError):
		return http.StatusBadRequest
	case errs.ErrorEqual(bizErr, errs.InvalidCredentials):
		return http.StatusUnauthorized
	case errs.ErrorEqual(bizErr, errs.AccountNotFound):
		return http.StatusNotFound
	case errs.ErrorEqual(bizErr, errs.EmailDuplicated):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func SuccessResp(c *app.RequestContext, data any) {
	write(c, http.StatusOK, data, nil)
}

// CreatedResp is SuccessResp with a 201 for freshly inserted resources.
func CreatedResp(c *app.RequestContext, data any) {
	write(c, http.StatusCreated, data, nil)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	write(c, httpStatus(bizErr), nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	c.AbortWithStatusJSON(httpStatus(bizErr), &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
