package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/botlist-space/dlspace/errors"
)

// Revision 응답 계약 버전
const Revision = "v2"

// JSONMapper camelCase 응답을 값 객체로 그대로 디코딩합니다
type JSONMapper struct{}

// Revision 매퍼가 다루는 계약 버전을 반환합니다
func (JSONMapper) Revision() string {
	return Revision
}

// Decode 본문을 target으로 디코딩합니다
func (JSONMapper) Decode(body []byte, target interface{}) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewDecodeError("응답 파싱 실패", err)
	}
	return nil
}

// CheckResponse 2xx가 아닌 응답을 {code, message} 전송 오류로 변환합니다
func CheckResponse(resp *Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return errors.FromResponse(resp.StatusCode, resp.Body)
}

// IsNotFound 단일 리소스 조회에서 404 또는 null 본문인지 확인합니다
func IsNotFound(resp *Response) bool {
	if resp.StatusCode == http.StatusNotFound {
		return true
	}
	if !resp.IsSuccess() {
		return false
	}
	trimmed := bytes.TrimSpace(resp.Body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
