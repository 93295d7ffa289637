// Package registry - Test các thao tác thread-safe của generic registry.
package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "uno")
	assert.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ: isNew = false
	isNew, err = r.Register("a", "dos")
	assert.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "dos", item)

	_, exists = r.Get("ghost")
	assert.False(t, exists)

	// Name rỗng bị từ chối
	_, err = r.Register("", "x")
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("n", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả item đã có, creator không được gọi lại
	item, err = r.GetOrCreate("n", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)

	// Creator lỗi: không đăng ký gì
	_, err = r.GetOrCreate("bad", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ClearWithCleanup(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "uno")

	cleaned := ""
	deleted, err := r.Clear("a", func(item string) error {
		cleaned = item
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "uno", cleaned)

	// Item không tồn tại: không lỗi, không xóa
	deleted, err = r.Clear("a", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)

	// Cleanup lỗi: item phải được giữ lại
	r.Register("b", "dos")
	deleted, err = r.Clear("b", func(string) error { return errors.New("boom") })
	assert.Error(t, err)
	assert.False(t, deleted)
	_, exists := r.Get("b")
	assert.True(t, exists)
}

func TestRegistry_RangeStopsEarly(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)
	r.Register("c", 3)

	visited := 0
	r.Range(func(name string, item int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, r.Len())
}
