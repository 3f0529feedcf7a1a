package game

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()
	id := uuid.New()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(id)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
	if n := k.size(); n != 0 {
		t.Errorf("expected released entries to be dropped, %d left", n)
	}

	unlockA := k.Lock(uuid.New())
	unlockB := k.Lock(uuid.New())
	if n := k.size(); n != 2 {
		t.Errorf("distinct ids should not share a lock, size = %d", n)
	}
	unlockA()
	unlockB()
}
