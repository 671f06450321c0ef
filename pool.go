package segment

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// The one-shot helper functions of the sub-packages (grapheme.Spans,
// word.Spans, ...) each need a segmenter for the duration of a single
// call. Callers tend to segment many small fragments in a row, so the
// segmenter shells are pooled instead of allocated per call.
type segmenterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSegmenterPool *segmenterPool

func init() {
	globalSegmenterPool = &segmenterPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Segmenter{}, nil
		})
	globalSegmenterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSegmenterPool.opool = pool.NewObjectPool(globalSegmenterPool.ctx, factory, config)
}

// BorrowSegmenter returns a pooled segmenter, set up to drive breaker b.
// Callers hand the segmenter back with ReleaseSegmenter when they are done
// with it; a released segmenter must not be used any further.
func BorrowSegmenter(b Breaker) *Segmenter {
	o, _ := globalSegmenterPool.opool.BorrowObject(globalSegmenterPool.ctx)
	s := o.(*Segmenter)
	s.breaker = b
	return s
}

// ReleaseSegmenter clears s and puts it back into the pool.
func ReleaseSegmenter(s *Segmenter) {
	s.breaker = nil
	s.text = nil
	s.pos, s.cursor = 0, 0
	s.span = Span{}
	s.inUse = false
	s.err = nil
	_ = globalSegmenterPool.opool.ReturnObject(globalSegmenterPool.ctx, s)
}
