package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	assert.True(t, q.Empty())

	q.Push(1, 2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())

	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Equal(t, []int{2, 3}, q.Drain())
	assert.True(t, q.Empty())

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueConcurrentPushDrain(t *testing.T) {
	q := New[int]()

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(base + j)
			}
		}(i * perProducer)
	}

	done := make(chan struct{})
	var drained int
	go func() {
		defer close(done)
		for drained < producers*perProducer {
			drained += len(q.Drain())
		}
	}()

	wg.Wait()
	<-done
	assert.Equal(t, producers*perProducer, drained)
	assert.True(t, q.Empty())
}
