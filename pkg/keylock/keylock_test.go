package keylock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	locks := New()

	var (
		wg      sync.WaitGroup
		active  int32
		overlap int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-1")
			defer unlock()

			if atomic.AddInt32(&active, 1) > 1 {
				atomic.StoreInt32(&overlap, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&overlap), "two holders of the same key ran at once")
	assert.Equal(t, 0, locks.Len())
}

func TestLockDoesNotBlockOtherKeys(t *testing.T) {
	locks := New()

	unlockA := locks.Lock("user-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("user-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on user-b waited for user-a")
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	locks := New()

	unlock := locks.Lock("user-1")
	require.Equal(t, 1, locks.Len())
	unlock()
	unlock()
	assert.Equal(t, 0, locks.Len())

	// the key is usable again after release
	again := locks.Lock("user-1")
	again()
	assert.Equal(t, 0, locks.Len())
}
