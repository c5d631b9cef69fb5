package render_test

import (
	"testing"

	"github.com/chazu/hachure/pkg/render"
)

func TestCachePutGet(t *testing.T) {
	c := render.NewCache()
	obj := &render.Object{Handle: "2F"}

	if _, ok := c.Get("2F"); ok {
		t.Fatal("empty cache reported a hit")
	}

	c.Put("2F", obj)
	got, ok := c.Get("2F")
	if !ok {
		t.Fatal("stored object not found")
	}
	if got != obj {
		t.Error("cache returned a different object")
	}
}

func TestCacheIgnoresNilAndHandleless(t *testing.T) {
	c := render.NewCache()

	c.Put("2F", nil)
	c.Put("", &render.Object{})

	if stats := c.Stats(); stats.Entries != 0 {
		t.Errorf("entries = %d, want 0", stats.Entries)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := render.NewCache()
	c.Put("2F", &render.Object{Handle: "2F"})
	c.Put("30", &render.Object{Handle: "30"})

	c.Invalidate("2F")
	if _, ok := c.Get("2F"); ok {
		t.Error("invalidated entry still served")
	}
	if _, ok := c.Get("30"); !ok {
		t.Error("unrelated entry lost")
	}

	c.InvalidateAll()
	if stats := c.Stats(); stats.Entries != 0 {
		t.Errorf("entries after InvalidateAll = %d, want 0", stats.Entries)
	}
}

func TestCacheStats(t *testing.T) {
	c := render.NewCache()
	c.Put("2F", &render.Object{Handle: "2F"})

	c.Get("2F")
	c.Get("2F")
	c.Get("missing")

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
}
