package utils

import (
	"time"

	"github.com/botlist-space/dlspace/constants"
)

// FormatDate 단일 날짜를 포맷팅합니다
func FormatDate(date time.Time) string {
	return date.Format(constants.DateFormat)
}

// FormatDateTime 날짜와 시간을 포맷팅합니다
func FormatDateTime(dateTime time.Time) string {
	return dateTime.Format(constants.DateTimeFormat)
}

// FromMillis epoch 밀리초를 time.Time으로 변환합니다
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// ToMillis time.Time을 epoch 밀리초로 변환합니다
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatMillis epoch 밀리초를 날짜·시간 문자열로 포맷팅합니다
func FormatMillis(ms int64) string {
	return FormatDateTime(FromMillis(ms))
}
