package profiling

import (
	"log"
	"runtime/pprof"
	"time"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile

var memProfilingInterval = 30 * time.Second

// DoMemProfiling arranges periodic heap profile snapshots into fileName and
// returns a func writing one on demand; defer it to capture the final state.
// Each write replaces the file. The returned func is never nil.
func DoMemProfiling(fileName string) (write func()) {
	write = func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.Printf("could not create memory profile %v: %v", fileName, err)
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("failed to close memory profile %v: %v", fileName, err)
			}
		}()
		if err := pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			write()
		}
	}()
	return write
}
