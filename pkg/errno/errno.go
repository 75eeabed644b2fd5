package errno

import (
	"errors"
	"fmt"
)

// Codes mirror the HTTP status written on the wire.
const (
	SuccessCode             = 200
	CreatedCode             = 201
	ParamErrCode            = 400
	AuthorizationFailedCode = 401
	ForbiddenCode           = 403
	NotFoundCode            = 404
	ConflictCode            = 409
	TooManyRequestsCode     = 429
	ServiceErrCode          = 500
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is matches on the code only, so a re-worded error still compares equal to its kind.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	Created                = NewErrNo(CreatedCode, "Created")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Unauthorized request")
	ForbiddenErr           = NewErrNo(ForbiddenCode, "Forbidden")
	NotFoundErr            = NewErrNo(NotFoundCode, "Resource not found")
	ConflictErr            = NewErrNo(ConflictCode, "Resource already exists")
	TooManyRequestsErr     = NewErrNo(TooManyRequestsCode, "Too many requests")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}

	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
