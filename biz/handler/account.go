package handler

import (
	"context"
	"strconv"

	"user_center/biz/model/domain"
	"user_center/biz/model/dto"
	"user_center/biz/model/errs"
	"user_center/biz/service/account"
	"user_center/biz/util/resp"
	"user_center/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateAccount 创建账号接口
//
//	@Tags			user
//	@Summary		create account
//	@Description	register a new account; the secret is stored hashed and never returned
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateAccountReq	true	"create account request body"
//	@Success		201	{object}	dto.CommonResp{data=dto.AccountView}
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		409	{object}	dto.CommonResp
//	@Router			/user [POST]
func CreateAccount(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateAccountReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	a, bizErr := account.NewDefault().Create(ctx, req.Name, req.Email, req.Secret)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.CreatedResp(c, accountView(a))
}

// Login 账号登录校验接口
//
//	@Tags			user
//	@Summary		login
//	@Description	validate email/secret; one fixed 401 for unknown email and wrong secret alike
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.LoginResp}
//	@Failure		401	{object}	dto.CommonResp
//	@Router			/user/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	a, bizErr := account.NewDefault().Validate(ctx, req.Email, req.Secret)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	if a == nil {
		// the service's no-match sentinel becomes a 401 here
		resp.FailResp(c, errs.InvalidCredentials)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		Message: "login success",
		Account: accountView(a),
	})
}

// ListAccounts 账号列表接口
//
//	@Tags			user
//	@Summary		list accounts
//	@Description	all accounts in insertion order, secrets omitted
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=[]dto.AccountView}
//	@Router			/user [GET]
func ListAccounts(ctx context.Context, c *app.RequestContext) {
	as, bizErr := account.NewDefault().FindAll(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	views := make([]dto.AccountView, 0, len(as))
	for _, a := range as {
		views = append(views, accountView(a))
	}
	resp.SuccessResp(c, views)
}

// GetAccount 账号查询接口
//
//	@Tags			user
//	@Summary		get account by id
//	@Produce		json
//	@Param			id	path		int	true	"account id"
//	@Success		200	{object}	dto.CommonResp{data=dto.AccountView}
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/user/{id} [GET]
func GetAccount(ctx context.Context, c *app.RequestContext) {
	id, ok := parseID(ctx, c)
	if !ok {
		return
	}

	a, bizErr := account.NewDefault().FindOne(ctx, id)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, accountView(a))
}

// UpdateAccount 账号更新接口
//
//	@Tags			user
//	@Summary		update account
//	@Description	partial update; absent fields are kept, a new secret is re-hashed
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int						true	"account id"
//	@Param			req	body		dto.UpdateAccountReq	true	"partial account body"
//	@Success		200	{object}	dto.CommonResp{data=dto.AccountView}
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/user/{id} [PATCH]
func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	id, ok := parseID(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateAccountReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	a, bizErr := account.NewDefault().Update(ctx, id, domain.AccountPatch{
		Name:   req.Name,
		Email:  req.Email,
		Secret: req.Secret,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, accountView(a))
}

// DeleteAccount 账号删除接口
//
//	@Tags			user
//	@Summary		delete account
//	@Description	physical delete
//	@Produce		json
//	@Param			id	path		int	true	"account id"
//	@Success		200	{object}	dto.CommonResp{data=dto.DeleteAccountResp}
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/user/{id} [DELETE]
func DeleteAccount(ctx context.Context, c *app.RequestContext) {
	id, ok := parseID(ctx, c)
	if !ok {
		return
	}

	if bizErr := account.NewDefault().Remove(ctx, id); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.DeleteAccountResp{})
}

func parseID(ctx context.Context, c *app.RequestContext) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		hlog.CtxNoticef(ctx, "bad account id %q: %v", raw, err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg("id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

func accountView(a *domain.Account) dto.AccountView {
	return dto.AccountView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Unix(),
		UpdatedAt: a.UpdatedAt.Unix(),
	}
}
