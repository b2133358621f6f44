package models

import (
	"bytes"
	"encoding/json"
)

// Collection 삽입 순서를 유지하는 키 고유 맵입니다
type Collection[V any] struct {
	keys   []string
	values map[string]V
}

// NewCollection 빈 컬렉션을 생성합니다
func NewCollection[V any]() *Collection[V] {
	return &Collection[V]{values: make(map[string]V)}
}

// Set 값을 저장합니다. 이미 있는 키는 처음 위치를 유지합니다
func (c *Collection[V]) Set(key string, value V) {
	if c.values == nil {
		c.values = make(map[string]V)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get 키에 해당하는 값을 반환합니다
func (c *Collection[V]) Get(key string) (V, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has 키 존재 여부를 확인합니다
func (c *Collection[V]) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Delete 키를 삭제합니다
func (c *Collection[V]) Delete(key string) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len 저장된 항목 수
func (c *Collection[V]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys 삽입 순서대로 키를 반환합니다
func (c *Collection[V]) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values 삽입 순서대로 값을 반환합니다
func (c *Collection[V]) Values() []V {
	out := make([]V, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.values[k])
	}
	return out
}

// Each 삽입 순서대로 순회합니다. fn이 false를 반환하면 중단합니다
func (c *Collection[V]) Each(fn func(key string, value V) bool) {
	for _, k := range c.keys {
		if !fn(k, c.values[k]) {
			return
		}
	}
}

// Filter 조건을 만족하는 항목만 담은 새 컬렉션을 반환합니다
func (c *Collection[V]) Filter(fn func(value V, key string) bool) *Collection[V] {
	out := NewCollection[V]()
	for _, k := range c.keys {
		if v := c.values[k]; fn(v, k) {
			out.Set(k, v)
		}
	}
	return out
}

// MarshalJSON 삽입 순서를 유지한 JSON 객체로 직렬화합니다
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MapCollection 각 값을 변환해 순서대로 반환합니다
func MapCollection[V, R any](c *Collection[V], fn func(value V, key string) R) []R {
	out := make([]R, 0, c.Len())
	c.Each(func(k string, v V) bool {
		out = append(out, fn(v, k))
		return true
	})
	return out
}

// CollectionFrom 슬라이스를 키 함수로 컬렉션에 담습니다. 중복 키는 처음 본 위치를 유지합니다
func CollectionFrom[V any](items []V, key func(V) string) *Collection[V] {
	c := NewCollection[V]()
	for _, item := range items {
		c.Set(key(item), item)
	}
	return c
}
