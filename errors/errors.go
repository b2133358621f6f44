package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/botlist-space/dlspace/constants"
	"github.com/valyala/fastjson"
)

// ErrorType 오류의 종류를 나타냅니다
type ErrorType int

const (
	TypeValidation ErrorType = iota
	TypeTransport
	TypeNotFound
	TypeDecode
	TypeSystem
)

func (t ErrorType) String() string {
	switch t {
	case TypeValidation:
		return "validation"
	case TypeTransport:
		return "transport"
	case TypeNotFound:
		return "not_found"
	case TypeDecode:
		return "decode"
	case TypeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// AppError 라이브러리에서 발생하는 구조화된 오류를 표현합니다
type AppError struct {
	Type       ErrorType
	Code       string
	Field      string
	Message    string
	StatusCode int
	Internal   error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// 오류 생성 함수들

// NewValidationError 호출 인자 검증 오류를 생성합니다
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Type:    TypeValidation,
		Code:    "INVALID_ARGUMENT",
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorf 포맷된 메시지로 검증 오류를 생성합니다
func NewValidationErrorf(field, format string, args ...interface{}) *AppError {
	return NewValidationError(field, fmt.Sprintf(format, args...))
}

// NewHTTPError 상태 코드와 메시지를 가진 전송 오류를 생성합니다
func NewHTTPError(code int, message string) *AppError {
	return &AppError{
		Type:       TypeTransport,
		Code:       "HTTP_ERROR",
		Message:    message,
		StatusCode: code,
	}
}

// NewTransportError 네트워크 계층 오류를 생성합니다. 상태 코드는 기본값 500입니다
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:       TypeTransport,
		Code:       "TRANSPORT_ERROR",
		Message:    message,
		StatusCode: constants.DefaultErrorCode,
		Internal:   err,
	}
}

// NewNotFoundError 리소스를 찾을 수 없는 오류를 생성합니다
func NewNotFoundError(code, message string) *AppError {
	return &AppError{
		Type:       TypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewDecodeError 응답 본문 해석 오류를 생성합니다
func NewDecodeError(message string, err error) *AppError {
	return &AppError{
		Type:     TypeDecode,
		Code:     "DECODE_ERROR",
		Message:  message,
		Internal: err,
	}
}

// NewSystemError 내부 오류를 생성합니다
func NewSystemError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeSystem,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// FromResponse 실패한 응답을 {code, message} 형태로 정규화합니다.
// 본문에 code/message가 있으면 그 값을, 없으면 HTTP 상태를, 그것도 없으면 500을 사용합니다.
func FromResponse(status int, body []byte) *AppError {
	code := status
	message := http.StatusText(status)

	if len(body) > 0 {
		var p fastjson.Parser
		if v, err := p.ParseBytes(body); err == nil && v.Type() == fastjson.TypeObject {
			if c := v.Get("code"); c != nil && c.Type() == fastjson.TypeNumber {
				code = c.GetInt()
			}
			if m := v.Get("message"); m != nil && m.Type() == fastjson.TypeString {
				message = string(m.GetStringBytes())
			}
		}
	}

	if code <= 0 {
		code = constants.DefaultErrorCode
	}
	if message == "" {
		message = constants.DefaultErrorMessage
	}
	return NewHTTPError(code, message)
}

// 오류 판별 헬퍼들

func typeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type, true
	}
	return 0, false
}

// IsValidation 오류가 검증 오류인지 확인합니다
func IsValidation(err error) bool {
	t, ok := typeOf(err)
	return ok && t == TypeValidation
}

// IsTransport 오류가 전송 오류인지 확인합니다
func IsTransport(err error) bool {
	t, ok := typeOf(err)
	return ok && t == TypeTransport
}

// IsNotFound 오류가 리소스 없음 오류인지 확인합니다
func IsNotFound(err error) bool {
	t, ok := typeOf(err)
	return ok && t == TypeNotFound
}

// StatusCode 오류에 담긴 HTTP 상태 코드를 반환합니다. 없으면 0입니다
func StatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// As errors.As를 그대로 노출합니다
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Is errors.Is를 그대로 노출합니다
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
