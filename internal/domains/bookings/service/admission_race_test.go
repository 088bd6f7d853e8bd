package service

import (
	"sync"
	"testing"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/helper"
	"github.com/stretchr/testify/assert"
)

// slotStore admits intervals under a single lock, the in-process analogue of
// the FOR UPDATE row lock that serializes admissions per field.
type slotStore struct {
	mu       sync.Mutex
	admitted [][2]int
}

func (s *slotStore) admit(start, end int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.admitted {
		if helper.Overlaps(b[0], b[1], start, end) {
			return false
		}
	}

	s.admitted = append(s.admitted, [2]int{start, end})

	return true
}

func TestConcurrentAdmissionNeverDoubleBooks(t *testing.T) {
	store := &slotStore{}

	const requests = 200

	var wg sync.WaitGroup

	wg.Add(requests)

	for i := 0; i < requests; i++ {
		go func(i int) {
			defer wg.Done()

			// Deterministic but heavily colliding windows of 60 to 120 minutes.
			start := (i * 53) % (24*60 - 120)
			end := start + 60 + (i%3)*30

			store.admit(start, end)
		}(i)
	}

	wg.Wait()

	assert.NotEmpty(t, store.admitted)

	for i := 0; i < len(store.admitted); i++ {
		for j := i + 1; j < len(store.admitted); j++ {
			a, b := store.admitted[i], store.admitted[j]
			assert.False(t, helper.Overlaps(a[0], a[1], b[0], b[1]),
				"admitted bookings [%d,%d) and [%d,%d) overlap", a[0], a[1], b[0], b[1])
		}
	}
}
