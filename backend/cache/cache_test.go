package cache

import (
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New[string](1 * time.Second)
	defer c.Close()

	c.Set("key1", "value1")

	val, found := c.Get("key1")
	if !found {
		t.Error("Expected to find key1")
	}
	if val != "value1" {
		t.Errorf("Expected value1, got %v", val)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New[int](100 * time.Millisecond)
	defer c.Close()

	c.Set("key1", 42)

	if _, found := c.Get("key1"); !found {
		t.Error("Expected to find key1 immediately")
	}

	time.Sleep(150 * time.Millisecond)

	val, found := c.Get("key1")
	if found {
		t.Error("Expected key1 to be expired")
	}
	if val != 0 {
		t.Errorf("Expected zero value for expired key, got %d", val)
	}
}

func TestCache_SetWithTTLOverridesDefault(t *testing.T) {
	c := New[string](50 * time.Millisecond)
	defer c.Close()

	c.SetWithTTL("long", "v", time.Hour)
	time.Sleep(80 * time.Millisecond)

	if _, found := c.Get("long"); !found {
		t.Error("Expected custom TTL to outlive the default")
	}
}

func TestCache_Delete(t *testing.T) {
	c := New[string](1 * time.Second)
	defer c.Close()

	c.Set("key1", "value1")
	c.Delete("key1")

	if _, found := c.Get("key1"); found {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCache_LenIgnoresExpired(t *testing.T) {
	c := New[string](time.Hour)
	defer c.Close()

	c.Set("a", "1")
	c.Set("b", "2")
	c.SetWithTTL("c", "3", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if got := c.Len(); got != 2 {
		t.Errorf("Expected 2 live entries, got %d", got)
	}
}

func TestCache_SweepRemovesExpired(t *testing.T) {
	c := newWithSweep[string](10*time.Millisecond, 20*time.Millisecond)
	defer c.Close()

	c.Set("key1", "value1")
	time.Sleep(100 * time.Millisecond)

	if _, ok := c.store.Load("key1"); ok {
		t.Error("Expected sweep to remove expired entry from the store")
	}
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	c := New[string](time.Second)
	c.Close()
	c.Close()
}
