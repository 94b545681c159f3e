package cache

import (
	"testing"
	"time"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("etcd", ProviderConfig{Size: 1, TTL: time.Minute})
	if err == nil {
		t.Fatal("Expected error for unknown provider, got nil")
	}
}

func TestRegisteredProviders_ContainsBuiltins(t *testing.T) {
	names := RegisteredProviders()

	has := func(want string) bool {
		for _, n := range names {
			if n == want {
				return true
			}
		}
		return false
	}
	if !has("memory") {
		t.Errorf("Expected memory provider to be registered, got %v", names)
	}
	if !has("redis") {
		t.Errorf("Expected redis provider to be registered, got %v", names)
	}
}

func TestRegister_NilProviderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on nil provider")
		}
	}()
	Register("nil-provider", nil)
}

func TestNew_InstrumentedWhenGroupSet(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 2, TTL: time.Minute, Group: "redirects-test"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*instrumentedCache); !ok {
		t.Errorf("Expected instrumented cache when Group is set, got %T", c)
	}

	// Counter updates must not interfere with lookups
	c.Set("k", "v")
	if v, found := c.Get("k"); !found || v != "v" {
		t.Errorf("Expected instrumented Get to pass through, got %q (found=%v)", v, found)
	}
	c.Get("missing")
}
