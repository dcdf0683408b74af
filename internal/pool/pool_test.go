package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetCreates(t *testing.T) {
	t.Parallel()

	p := New(func() *int {
		x := 42
		return &x
	}, nil)
	obj := p.Get()
	require.NotNil(t, obj)
	assert.Equal(t, 42, *obj)
}

func TestPoolPutResets(t *testing.T) {
	t.Parallel()

	p := New(
		func() *[]int {
			s := make([]int, 0, 4)
			return &s
		},
		func(s *[]int) { *s = (*s)[:0] },
	)
	obj := p.Get()
	*obj = append(*obj, 1, 2, 3)
	p.Put(obj)
	assert.Empty(t, *obj)

	assert.NotPanics(t, func() { p.Put(nil) })
	assert.Empty(t, *p.Get())
}

func TestPoolConcurrent(t *testing.T) {
	t.Parallel()

	p := New(func() *map[string]int {
		m := make(map[string]int)
		return &m
	}, func(m *map[string]int) { clear(*m) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m := p.Get()
				assert.Empty(t, *m)
				(*m)["k"] = j
				p.Put(m)
			}
		}()
	}
	wg.Wait()
}
