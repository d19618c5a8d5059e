package profiling

import (
	"log"
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile

// DoCPUProfiling starts CPU profiling into fileName. The returned func stops
// profiling and closes the file; it is never nil, so callers can defer it
// unconditionally.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		log.Printf("could not create CPU profile %v: %v", fileName, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profiling: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("failed to close CPU profile %v: %v", fileName, err)
		}
	}
}
