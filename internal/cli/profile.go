package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	memProfiler *memProfilerState
)

type memProfilerState struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	stopped            chan struct{}
}

func StartCPUProfiler(profileOutput io.Writer) error {
	runtime.SetCPUProfileRate(500)
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		return fmt.Errorf("start cpu profiler: %w", err)
	}
	return nil
}

func StopCPUProfiler() {
	pprof.StopCPUProfile()
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	profiler := &memProfilerState{
		dumpPath:           profileDumpPath,
		shouldProfilerStop: make(chan struct{}),
		stopped:            make(chan struct{}),
	}
	memProfiler = profiler

	go func() {
		defer close(profiler.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-profiler.shouldProfilerStop:
				return
			case <-ticker.C:
				profiler.dump()
			}
		}
	}()
}

func (m *memProfilerState) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err == nil {
		m.heapDumps = append(m.heapDumps, w.Bytes())
	}
}

// StopMemoryProfiler takes a last heap dump and writes every dump taken so far into the profile directory
func StopMemoryProfiler() error {
	profiler := memProfiler
	if profiler == nil {
		return nil
	}
	memProfiler = nil

	close(profiler.shouldProfilerStop)
	<-profiler.stopped
	profiler.dump()

	if err := os.MkdirAll(profiler.dumpPath, 0755); err != nil {
		return err
	}
	for dIdx, dump := range profiler.heapDumps {
		err := os.WriteFile(filepath.Join(profiler.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0644)
		if err != nil {
			return err
		}
	}
	return nil
}
