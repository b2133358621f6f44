package models

import "encoding/json"

// Optional 수정 요청에서 "미설정", "null", "값"을 구분하기 위한 타입입니다
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some 값이 설정된 Optional을 생성합니다
func Some[T any](value T) Optional[T] {
	return Optional[T]{set: true, value: value}
}

// Null 명시적으로 null인 Optional을 생성합니다
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet 필드가 요청에 포함되는지 확인합니다
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull 필드가 null로 설정되었는지 확인합니다
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Value 설정된 값을 반환합니다. null이거나 미설정이면 false입니다
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MarshalJSON null 또는 값을 직렬화합니다
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// String 문자열 포인터 헬퍼
func String(v string) *string { return &v }

// Bool 불리언 포인터 헬퍼
func Bool(v bool) *bool { return &v }

// Int 정수 포인터 헬퍼
func Int(v int) *int { return &v }

func putString(fields map[string]interface{}, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}

func putBool(fields map[string]interface{}, key string, v *bool) {
	if v != nil {
		fields[key] = *v
	}
}

func putList(fields map[string]interface{}, key string, v []string) {
	if v != nil {
		fields[key] = v
	}
}

func putOptional[T any](fields map[string]interface{}, key string, v Optional[T]) {
	if !v.IsSet() {
		return
	}
	if v.IsNull() {
		fields[key] = nil
		return
	}
	fields[key] = v.value
}
