package cache

import (
	"net/url"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	t.Run("set then get returns the stored value", func(t *testing.T) {
		c := New(time.Minute)
		defer c.Stop()
		key := c.DetailKey(EntityBooks, 42)
		c.Set(key, []byte("body"))
		got, ok := c.Get(key)
		if !ok {
			t.Fatal("expected a cache hit")
		}
		if string(got) != "body" {
			t.Errorf("expected %q; got %q", "body", got)
		}
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		c := New(20 * time.Millisecond)
		defer c.Stop()
		key := c.DetailKey(EntityBooks, 42)
		c.Set(key, []byte("body"))
		time.Sleep(60 * time.Millisecond)
		if _, ok := c.Get(key); ok {
			t.Error("expected the entry to have expired")
		}
	})

	t.Run("delete removes an entry", func(t *testing.T) {
		c := New(time.Minute)
		defer c.Stop()
		key := c.DetailKey(EntityReaders, 7)
		c.Set(key, []byte("body"))
		c.Delete(key)
		if _, ok := c.Get(key); ok {
			t.Error("expected a cache miss after delete")
		}
	})

	t.Run("invalidating lists retires the key family", func(t *testing.T) {
		c := New(time.Minute)
		defer c.Stop()
		before := c.ListKey(EntityBooks, "page=1")
		c.Set(before, []byte("body"))
		c.InvalidateLists(EntityBooks)
		after := c.ListKey(EntityBooks, "page=1")
		if before == after {
			t.Error("expected a new list key after invalidation")
		}
		if _, ok := c.Get(after); ok {
			t.Error("expected a cache miss under the new generation")
		}
	})

	t.Run("invalidating one entity leaves other list families alone", func(t *testing.T) {
		c := New(time.Minute)
		defer c.Stop()
		readersKey := c.ListKey(EntityReaders, "page=1")
		c.InvalidateEntity(EntityBooks, 1)
		if got := c.ListKey(EntityReaders, "page=1"); got != readersKey {
			t.Error("expected the readers list key family to be untouched")
		}
	})

	t.Run("a nil cache is a no-op", func(t *testing.T) {
		var c *Cache
		c.Set("key", []byte("body"))
		if _, ok := c.Get("key"); ok {
			t.Error("expected a nil cache to always miss")
		}
		c.Delete("key")
		c.InvalidateLists(EntityBooks)
		c.InvalidateEntity(EntityBooks, 1)
		c.Stop()
	})
}

func TestSignature(t *testing.T) {
	t.Run("parameters are emitted in a fixed order", func(t *testing.T) {
		qs := url.Values{}
		qs.Set("page", "2")
		qs.Set("search", "go")
		got := Signature(qs, "search", "page")
		want := "search=go&page=2"
		if got != want {
			t.Errorf("expected %q; got %q", want, got)
		}
	})

	t.Run("absent parameters are omitted", func(t *testing.T) {
		qs := url.Values{}
		qs.Set("page", "1")
		got := Signature(qs, "search", "page", "sort")
		want := "page=1"
		if got != want {
			t.Errorf("expected %q; got %q", want, got)
		}
	})

	t.Run("repeated values are sorted", func(t *testing.T) {
		qs := url.Values{}
		qs.Add("category", "scifi")
		qs.Add("category", "classics")
		got := Signature(qs, "category")
		want := "category=classics,scifi"
		if got != want {
			t.Errorf("expected %q; got %q", want, got)
		}
	})
}
