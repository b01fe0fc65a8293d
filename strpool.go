package expplot

import "sync"

// StringPool interns the string values of String fields.
type StringPool struct {
	sync.Mutex
	pool  []string
	index map[string]int
}

func NewStringPool() *StringPool {
	return &StringPool{
		pool:  make([]string, 0, 100),
		index: make(map[string]int, 100),
	}
}

// Add returns the index of s, adding it to the pool if not yet present.
func (sp *StringPool) Add(s string) int {
	sp.Lock()
	defer sp.Unlock()
	if i, ok := sp.index[s]; ok {
		return i
	}
	sp.pool = append(sp.pool, s)
	sp.index[s] = len(sp.pool) - 1
	return len(sp.pool) - 1
}

// Find returns the index of s or -1 if s is not in the pool.
func (sp *StringPool) Find(s string) int {
	sp.Lock()
	defer sp.Unlock()
	if i, ok := sp.index[s]; ok {
		return i
	}
	return -1
}

func (sp *StringPool) Get(i int) string {
	sp.Lock()
	defer sp.Unlock()
	if i < 0 || i >= len(sp.pool) {
		return "--NA--"
	}

	return sp.pool[i]
}

func (sp *StringPool) Len() int {
	sp.Lock()
	defer sp.Unlock()
	return len(sp.pool)
}
