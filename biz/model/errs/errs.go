package errs

import "fmt"

type Error interface {
	Error() string
	Code() int32
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code int32
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg)
}

func New(code int32, msg string) Error {
	return &bizError{
		code: code,
		msg:  msg,
	}
}

// ErrorEqual compares by code only; SetMsg/SetErr variants stay equal to
// their base error.
func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}

	if err1 == nil || err2 == nil {
		return false
	}

	return err1.Code() == err2.Code()
}

var (
	Success     = New(0, "success")
	ServerError = New(1_0001, "internal server error")
	ParamError  = New(1_0002, "param error")

	// InvalidCredentials is the transport-level translation of the account
	// service's "no match" sentinel. One message for unknown email and wrong
	// secret alike.
	InvalidCredentials = New(2_0001, "email or secret incorrect")
	AccountNotFound    = New(2_0002, "account not found")
	EmailDuplicated    = New(2_0003, "email already in use")
)
