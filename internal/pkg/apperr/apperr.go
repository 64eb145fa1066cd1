package apperr

import (
	"fmt"
	"net/http"
)

type Code int

const (
	BadRequestCode    Code = http.StatusBadRequest
	ForbiddenCode     Code = http.StatusForbidden
	NotFoundCode      Code = http.StatusNotFound
	InternalErrorCode Code = http.StatusInternalServerError
)

var ErrStrMap = map[Code]string{
	BadRequestCode:    "bad request",
	ForbiddenCode:     "forbidden",
	NotFoundCode:      "not found",
	InternalErrorCode: "internal server error",
}

// AppError 帶狀態碼的錯誤, handler依照Code決定http status
type AppError struct {
	Code Code
	Msg  string
}

func (e *AppError) Error() string {
	return e.Msg
}

func New(code Code, msg string) *AppError {
	return &AppError{
		Code: code,
		Msg:  msg,
	}
}

func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}
