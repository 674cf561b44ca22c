package calculator

import (
	"sync"
	"time"
)

// 基于行的任务分配
type executor struct {
	dispatchChan chan task
	workers      int
	f            func(t task)

	wg   sync.WaitGroup // 等待本轮任务全部完成
	quit chan struct{}
	once sync.Once
}

type task struct {
	start int
	end   int
}

func newExecutor(workers int, f func(t task)) *executor {
	if workers < 1 {
		workers = 1
	}
	e := &executor{
		dispatchChan: make(chan task, 50),
		workers:      workers,
		f:            f,
		quit:         make(chan struct{}),
	}
	if workers > 1 {
		e.run()
	}
	return e
}

func (e *executor) run() {
	for i := 0; i < e.workers; i++ {
		go func() {
			for {
				select {
				case t := <-e.dispatchChan:
					e.f(t)
					e.wg.Done()
				case <-e.quit:
					return
				}
			}
		}()
	}
}

// dispatchTask 将 [first, last) 划分为任务并阻塞到全部完成
func (e *executor) dispatchTask(first, last int) time.Duration {
	start := time.Now()
	if last <= first {
		return time.Since(start)
	}
	if e.workers == 1 {
		e.f(task{start: first, end: last})
		return time.Since(start)
	}

	tasks := splitTasks(first, last, e.workers)
	e.wg.Add(len(tasks))
	for _, t := range tasks {
		e.dispatchChan <- t
	}
	e.wg.Wait()
	return time.Since(start)
}

func (e *executor) stop() {
	e.once.Do(func() {
		close(e.quit)
	})
}

// splitTasks 每个 worker 分到两个半块，余数逐个分配
func splitTasks(first, last, workers int) []task {
	total := last - first
	taskLen, remainder := total/workers, total%workers
	tasks := make([]task, 0, workers*2+remainder)

	start := first
	if taskLen > 0 {
		half1, half2 := taskLen/2, taskLen/2
		if taskLen%2 == 1 {
			half2++
		}
		for start < last-remainder {
			if half1 != 0 {
				tasks = append(tasks, task{start: start, end: start + half1})
				start += half1
			}
			tasks = append(tasks, task{start: start, end: start + half2})
			start += half2
		}
	}

	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}
