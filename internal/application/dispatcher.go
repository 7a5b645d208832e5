package application

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Dispatcher runs jobs in per-conversation serial queues. Each conversation gets one
// worker goroutine that exits as soon as its queue is empty, so a slow search only
// delays later events of the same conversation.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[string][]func()
	wg     sync.WaitGroup
}

// NewDispatcher func - Creates new dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		queues: make(map[string][]func()),
	}
}

// Submit enqueues job behind the pending jobs of conversationID
func (d *Dispatcher) Submit(conversationID string, job func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	queue, running := d.queues[conversationID]
	d.queues[conversationID] = append(queue, job)
	if running {
		return
	}

	d.wg.Add(1)
	go d.work(conversationID)
}

// Wait blocks until every submitted job has finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Pending returns the number of conversations with a live worker
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queues)
}

func (d *Dispatcher) work(conversationID string) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		queue := d.queues[conversationID]
		if len(queue) == 0 {
			delete(d.queues, conversationID)
			d.mu.Unlock()
			return
		}
		job := queue[0]
		d.queues[conversationID] = queue[1:]
		d.mu.Unlock()

		d.run(conversationID, job)
	}
}

func (d *Dispatcher) run(conversationID string, job func()) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Recovered from panic in conversation %s: %v", conversationID, r)
		}
	}()
	job()
}
