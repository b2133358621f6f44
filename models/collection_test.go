package models

import (
	"testing"
)

func TestCollectionKeepsInsertionOrder(t *testing.T) {
	c := NewCollection[int]()
	c.Set("b", 2)
	c.Set("a", 1)
	c.Set("c", 3)
	c.Set("b", 20)

	keys := c.Keys()
	expected := []string{"b", "a", "c"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("Expected key %s at %d, got %s", expected[i], i, keys[i])
		}
	}

	if v, _ := c.Get("b"); v != 20 {
		t.Errorf("Expected re-set value 20, got %d", v)
	}
}

func TestCollectionDelete(t *testing.T) {
	c := NewCollection[string]()
	c.Set("1", "one")
	c.Set("2", "two")

	if !c.Delete("1") {
		t.Error("Delete should report an existing key")
	}
	if c.Delete("1") {
		t.Error("Delete should not report a missing key")
	}
	if c.Has("1") || c.Len() != 1 {
		t.Errorf("Expected only key 2 to remain, got %v", c.Keys())
	}
}

func TestCollectionFilterAndMap(t *testing.T) {
	c := CollectionFrom([]User{
		{ID: "1", Username: "alice", Discriminator: "0001"},
		{ID: "2", Username: "bob", Discriminator: "0002", Admin: true},
		{ID: "1", Username: "alice-dup", Discriminator: "0001"},
	}, func(u User) string { return u.ID })

	if c.Len() != 2 {
		t.Fatalf("Expected duplicate ids to collapse, got %d entries", c.Len())
	}

	admins := c.Filter(func(u User, _ string) bool { return u.Admin })
	if admins.Len() != 1 || !admins.Has("2") {
		t.Errorf("Expected only bob in admins, got %v", admins.Keys())
	}

	tags := MapCollection(c, func(u User, _ string) string { return u.Tag() })
	if tags[0] != "alice-dup#0001" || tags[1] != "bob#0002" {
		t.Errorf("Unexpected tags: %v", tags)
	}
}

func TestCollectionMarshalJSON(t *testing.T) {
	c := NewCollection[int]()
	c.Set("z", 1)
	c.Set("a", 2)

	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `{"z":1,"a":2}` {
		t.Errorf("Expected insertion ordered object, got %s", data)
	}
}
