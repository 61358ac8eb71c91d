package summarizer_test

import (
	"sync"
	"time"
)

type generationCall struct {
	provider string
	success  bool
}

type fakeMetrics struct {
	mu          sync.Mutex
	generations []generationCall
	lengths     []int
}

func (f *fakeMetrics) RecordGeneration(provider string, _ time.Duration, success bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generations = append(f.generations, generationCall{provider: provider, success: success})
}

func (f *fakeMetrics) RecordGenerationLength(_ string, length int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lengths = append(f.lengths, length)
}
