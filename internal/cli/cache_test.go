package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pchuan98/livecharts/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)

	out, err := runCommand(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(home, "livecharts"); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		if _, err := runCommand(t, "cache", "clear"); err != nil {
			t.Fatalf("cache clear: %v", err)
		}
	})

	t.Run("removes entries", func(t *testing.T) {
		dir, err := cache.DefaultDir()
		if err != nil {
			t.Fatal(err)
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, key := range []string{"layout:a", "artifact:b"} {
			if err := fc.Set(ctx, key, []byte("x"), cache.TTLLayout); err != nil {
				t.Fatal(err)
			}
		}

		if _, err := runCommand(t, "cache", "clear"); err != nil {
			t.Fatalf("cache clear: %v", err)
		}
		if _, hit, _ := fc.Get(ctx, "layout:a"); hit {
			t.Error("entry survived cache clear")
		}
	})
}

func TestRenderPopulatesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := writeDefinition(t)

	for range 2 {
		if _, err := runCommand(t, "render", path); err != nil {
			t.Fatalf("render: %v", err)
		}
	}

	dir, err := cache.DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	n, err := fc.Clear()
	if err != nil {
		t.Fatal(err)
	}
	// One layout and one svg artifact.
	if n != 2 {
		t.Errorf("cached entries = %d, want 2", n)
	}
}
