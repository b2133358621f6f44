package interfaces

import (
	"github.com/botlist-space/dlspace/api"
	"github.com/botlist-space/dlspace/legacy"
)

// ResponseMapper API 리비전별 응답 본문을 모델로 변환합니다
type ResponseMapper interface {
	Revision() string
	Decode(body []byte, target interface{}) error
}

var (
	_ ResponseMapper = api.JSONMapper{}
	_ ResponseMapper = legacy.SnakeCaseMapper{}
)
