package tmpl

import "sync"

//fileLock serializes work per key so two goroutines can't compile the same
//file at once while leaving different files independent.
type fileLock struct {
	lks map[string]*sync.Mutex
	lk  sync.RWMutex
}

func newFileLock() *fileLock {
	return &fileLock{
		lks: map[string]*sync.Mutex{},
	}
}

func (f *fileLock) Lock(key string) {
	f.lk.Lock()
	lk, ex := f.lks[key]
	if !ex {
		lk = new(sync.Mutex)
		f.lks[key] = lk
	}
	f.lk.Unlock()

	lk.Lock()
}

func (f *fileLock) Unlock(key string) {
	f.lk.RLock()
	defer f.lk.RUnlock()

	f.lks[key].Unlock()
}
