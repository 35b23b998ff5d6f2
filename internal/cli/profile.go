package cli

import (
	"bmpsteg/internal/logging"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	profilersLock sync.Mutex
	cpuProfiler   *CPUProfilerStruct
	memProfiler   *MemProfilerStruct
)

type CPUProfilerStruct struct {
	profileOutput *os.File
}

type MemProfilerStruct struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	stopped            sync.WaitGroup
}

func StartCPUProfiler(profilePath string) error {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		_ = profileOutput.Close()
		return fmt.Errorf("starting CPU profiler: %w", err)
	}

	profilersLock.Lock()
	cpuProfiler = &CPUProfilerStruct{profileOutput: profileOutput}
	profilersLock.Unlock()
	return nil
}

func StopCPUProfiler() {
	profilersLock.Lock()
	defer profilersLock.Unlock()

	if cpuProfiler == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := cpuProfiler.profileOutput.Close(); err != nil {
		logging.BuildLogger().WithError(err).Error("Error closing CPU profile")
	}
	cpuProfiler = nil
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	profiler := &MemProfilerStruct{dumpPath: profileDumpPath, shouldProfilerStop: make(chan struct{})}
	profilersLock.Lock()
	memProfiler = profiler
	profilersLock.Unlock()

	profiler.stopped.Add(1)
	go func() {
		defer profiler.stopped.Done()
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

func (p *MemProfilerStruct) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Error("Error taking heap profile")
		return
	}
	p.heapDumps = append(p.heapDumps, w.Bytes())
}

func StopMemoryProfiler() {
	profilersLock.Lock()
	profiler := memProfiler
	memProfiler = nil
	profilersLock.Unlock()

	if profiler == nil {
		return
	}

	close(profiler.shouldProfilerStop)
	profiler.stopped.Wait()
	profiler.dump()

	logger := logging.BuildLogger()
	if err := os.MkdirAll(profiler.dumpPath, 0775); err != nil {
		logger.WithError(err).Error("Error creating memory profile directory")
		return
	}
	for dIdx, dump := range profiler.heapDumps {
		err := os.WriteFile(filepath.Join(profiler.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0664)
		if err != nil {
			logger.WithError(err).Error("Error writing memory profile to disk")
		}
	}
}

// StopProfilers flushes any running profiler to disk. Safe to call more than once.
func StopProfilers() {
	StopCPUProfiler()
	StopMemoryProfiler()
}
