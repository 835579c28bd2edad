package debug

// Runtime metrics logger, enabled when config.Debug is true. Emits goroutine
// count, heap stats and process RSS at a fixed interval so heap growth can be
// separated from native (Tk, pixel buffer) growth.

import (
	"log/slog"
	"os"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// StartStatsLogger launches a goroutine that logs runtime and process memory
// stats every interval. Best-effort: an unavailable RSS source is logged once
// and then suppressed.
func StartStatsLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		proc, procErr := process.NewProcess(int32(os.Getpid()))
		var rssErrLogged bool
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range ticker.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss := uint64(0)
			if procErr == nil {
				if mi, err := proc.MemoryInfo(); err == nil {
					rss = mi.RSS
				} else if !rssErrLogged {
					logger.Warn("statslog: rss query failed", slog.String("err", err.Error()))
					rssErrLogged = true
				}
			} else if !rssErrLogged {
				logger.Warn("statslog: process handle unavailable", slog.String("err", procErr.Error()))
				rssErrLogged = true
			}
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
