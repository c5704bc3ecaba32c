// Command humthreads-monitor runs a few managed worker threads and serves
// their introspection data: structured lifecycle logs on stderr and a
// Prometheus /metrics endpoint with per-thread series.
//
// Stop it with Ctrl-C; workers are asked to shut down cooperatively and
// joined before exit.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stefano-pogliani/humthreads"
	"github.com/stefano-pogliani/humthreads/threadmetrics"
)

func main() {
	log.DefaultLogger = log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: time.RFC3339,
		Writer: &log.ConsoleWriter{
			ColorOutput: log.IsTerminal(os.Stderr.Fd()),
		},
	}

	prometheus.MustRegister(threadmetrics.NewCollector())

	builderFor := func(name, fullName string) *humthreads.Builder {
		return humthreads.New(name).
			FullName(fullName).
			OnStart(func(status humthreads.ThreadStatus) {
				log.Info().
					Str("thread", status.Name).
					Str("short_name", status.ShortName).
					Msg("thread started")
			}).
			OnExit(func(status humthreads.ThreadStatus, p *humthreads.PanicError, d time.Duration) {
				event := log.Info()
				if p != nil {
					event = log.Error().Str("panic", fmt.Sprint(p.Value))
				}
				event.
					Str("thread", status.Name).
					Dur("ran_for", d).
					Msg("thread exited")
			})
	}

	workers := make([]*humthreads.Thread[int], 0, 3)
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("worker-%d", i)
		thread, err := humthreads.Spawn(
			builderFor(name, fmt.Sprintf("demo worker %d", i)),
			func(scope *humthreads.ThreadScope) int {
				batches := 0
				for !scope.ShouldShutdown() {
					guard := scope.ScopedActivity(fmt.Sprintf("processing batch %d", batches))
					time.Sleep(250 * time.Millisecond)
					guard.Done()
					batches++
					time.Sleep(100 * time.Millisecond)
				}
				return batches
			},
		)
		if err != nil {
			log.Fatal().Err(err).Str("thread", name).Msg("failed to spawn worker")
		}
		workers = append(workers, thread)
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":9290", nil); err != nil {
			log.Fatal().Err(err).Msg("metrics endpoint failed")
		}
	}()
	log.Info().Str("addr", ":9290").Msg("serving /metrics")

	// Periodically log the registry snapshot until interrupted.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			for _, status := range humthreads.RegisteredThreads() {
				log.Info().
					Str("thread", status.Name).
					Str("activity", status.Activity).
					Msg("registered thread")
			}
		case <-stop:
			break loop
		}
	}

	log.Info().Msg("shutting workers down")
	for _, thread := range workers {
		thread.RequestShutdown()
	}
	for i, thread := range workers {
		batches, err := thread.JoinTimeout(5 * time.Second)
		if err != nil {
			log.Error().Err(err).Int("worker", i).Msg("worker failed to stop")
			continue
		}
		log.Info().Int("worker", i).Int("batches", batches).Msg("worker stopped")
	}
}
