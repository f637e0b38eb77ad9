package galleria

import (
	"testing"
	"time"
)

func TestListingCacheServesFromCache(t *testing.T) {
	l := newTestLibrary(t)
	if err := l.SaveImage("a.png", []byte("a")); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	c := newListingCache(l, time.Minute)
	names, err := c.ImageNames()
	if err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("names = %v, want 1 entry", names)
	}

	// A write that bypasses Invalidate is not visible until the TTL
	// expires.
	if err := l.SaveImage("b.png", []byte("b")); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	names, err = c.ImageNames()
	if err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("cache reloaded before TTL: %v", names)
	}
}

func TestListingCacheInvalidate(t *testing.T) {
	l := newTestLibrary(t)
	c := newListingCache(l, time.Minute)

	if _, err := c.ImageNames(); err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if err := l.SaveImage("new.png", []byte("n")); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	c.Invalidate()

	names, err := c.ImageNames()
	if err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "new.png" {
		t.Fatalf("names = %v, want [new.png]", names)
	}
}

func TestListingCacheExpires(t *testing.T) {
	l := newTestLibrary(t)
	c := newListingCache(l, 50*time.Millisecond)

	if _, err := c.ImageNames(); err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if err := l.SaveImage("late.png", []byte("l")); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	names, err := c.ImageNames()
	if err != nil {
		t.Fatalf("ImageNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "late.png" {
		t.Fatalf("names = %v, want [late.png] after TTL", names)
	}
}
