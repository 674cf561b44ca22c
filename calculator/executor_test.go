package calculator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTasksCoversRange(t *testing.T) {
	for _, c := range []struct{ first, last, workers int }{
		{0, 10, 4}, {0, 3, 4}, {5, 6, 1}, {0, 1000, 7}, {3, 11, 8}, {0, 9, 3},
	} {
		tasks := splitTasks(c.first, c.last, c.workers)
		next := c.first
		for _, tk := range tasks {
			assert.Equal(t, next, tk.start, "%+v", c)
			assert.Greater(t, tk.end, tk.start, "%+v", c)
			next = tk.end
		}
		assert.Equal(t, c.last, next, "%+v", c)
	}
}

func TestExecutorDispatch(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]int)
	e := newExecutor(4, func(tk task) {
		mu.Lock()
		defer mu.Unlock()
		for i := tk.start; i < tk.end; i++ {
			seen[i]++
		}
	})
	defer e.stop()

	// 多轮调度复用同一组 worker
	for round := 0; round < 3; round++ {
		e.dispatchTask(0, 50)
	}
	assert.Len(t, seen, 50)
	for i := 0; i < 50; i++ {
		assert.Equal(t, 3, seen[i])
	}

	e.dispatchTask(10, 10)
	assert.Equal(t, 3, seen[10])
}
