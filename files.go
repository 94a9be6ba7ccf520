package tmpl

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Mode bool

func (m Mode) String() string {
	if bool(m) {
		return "Production"
	}
	return "Development"
}

const (
	Development Mode = false
	Production  Mode = true
)

var (
	modeChan   = make(chan Mode)
	modeChange = make(chan Mode)
)

func init() {
	go modeSpitter()
}

func modeSpitter() {
	mode := Development
	for {
		select {
		case modeChan <- mode:
		case mode = <-modeChange:
		}
	}
}

//CompileMode switches template file handling. In Development every ParseFile
//reads and compiles from disk so the latest contents are always used. In
//Production a file is compiled the first time it is needed and the tree is
//cached for subsequent calls.
func CompileMode(mode Mode) {
	modeChange <- mode
}

var (
	cache   = map[string]*Template{}
	cacheMu sync.RWMutex
	parsing = newFileLock()
)

//ParseFile reads and compiles the template at path, honoring the compile
//mode's cache.
func ParseFile(path string) (*Template, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	mode := <-modeChan

	if mode == Production {
		cacheMu.RLock()
		t, ex := cache[abs]
		cacheMu.RUnlock()
		if ex {
			return t, nil
		}
	}

	//one compile per file at a time
	parsing.Lock(abs)
	defer parsing.Unlock(abs)

	if mode == Production {
		cacheMu.RLock()
		t, ex := cache[abs]
		cacheMu.RUnlock()
		if ex {
			return t, nil
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	t, err := Compile(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if mode == Production {
		cacheMu.Lock()
		cache[abs] = t
		cacheMu.Unlock()
	}
	return t, nil
}
