package source

import (
	"context"
	"errors"
	"io"
)

// ErrQueueClosed indicates a push into a closed queue.
var ErrQueueClosed = errors.New("source: queue closed")

// Queue is a bounded producer/consumer byte source. A background producer
// pushes chunks while a single walker pulls bytes; Next blocks until a
// chunk arrives, the queue is closed, or the context is done.
//
// The queue expects a single producer: Close must be called by the
// producer after its final Push.
type Queue struct {
	ctx    context.Context
	chunks chan []byte
	cur    []byte
	pos    int
	closed bool
}

// NewQueue creates a queue holding at most capacity pending chunks.
// Cancellation and timeout policy live entirely in ctx; the walker itself
// never times out.
func NewQueue(ctx context.Context, capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}

	return &Queue{
		ctx:    ctx,
		chunks: make(chan []byte, capacity),
	}
}

// Push enqueues a copy of chunk, blocking while the queue is full.
func (q *Queue) Push(chunk []byte) error {
	if q.closed {
		return ErrQueueClosed
	}
	if len(chunk) == 0 {
		return nil
	}

	buf := make([]byte, len(chunk))
	copy(buf, chunk)

	select {
	case q.chunks <- buf:
		return nil
	case <-q.ctx.Done():
		return q.ctx.Err()
	}
}

// Close marks the end of the stream. Pending chunks remain readable.
func (q *Queue) Close() {
	if q.closed {
		return
	}
	q.closed = true
	close(q.chunks)
}

func (q *Queue) Next() (byte, error) {
	for q.pos >= len(q.cur) {
		select {
		case chunk, ok := <-q.chunks:
			if !ok {
				return 0, io.EOF
			}
			q.cur = chunk
			q.pos = 0
		case <-q.ctx.Done():
			return 0, q.ctx.Err()
		}
	}

	c := q.cur[q.pos]
	q.pos++
	return c, nil
}
