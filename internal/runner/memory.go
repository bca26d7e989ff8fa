package runner

import (
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

const memorySampleInterval = 100 * time.Millisecond

// memorySampler polls a process's resident set size while it runs and keeps
// the peak. Short-lived processes may record zero samples; that reads as 0
// rather than an error, matching how transient processes disappear between
// polls.
type memorySampler struct {
	peak chan uint64
	quit chan struct{}
}

func startMemorySampler(pid int) *memorySampler {
	s := &memorySampler{peak: make(chan uint64, 1), quit: make(chan struct{})}
	go s.loop(pid)
	return s
}

func (s *memorySampler) loop(pid int) {
	var peak uint64
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		s.peak <- 0
		return
	}
	ticker := time.NewTicker(memorySampleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.quit:
			s.peak <- peak
			return
		case <-ticker.C:
			info, err := proc.MemoryInfo()
			if err != nil {
				// Process exited between the wait and this poll.
				continue
			}
			if info.RSS > peak {
				peak = info.RSS
			}
		}
	}
}

// stop ends sampling and returns the peak RSS in bytes.
func (s *memorySampler) stop() uint64 {
	close(s.quit)
	return <-s.peak
}
