package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the measured
// tick rate drops below a fraction of the target
type Profiler struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	dir         string
	threshold   float64
	warmup      time.Duration
	cooldown    time.Duration
	duration    time.Duration
	started     time.Time
	lastCapture time.Time
	capturing   bool
	captures    int
	logger      *log.Logger

	// capture writes the profiles for one drop. Replaced in tests.
	capture func(baseName string) error
}

// NewProfiler creates a profiler writing into dir for a host running at
// targetTPS. Drops below 90% of the target are captured.
func NewProfiler(dir string, targetTPS int, logger *log.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Profiler{
		dir:       dir,
		threshold: float64(targetTPS) * 0.9,
		warmup:    3 * time.Second,
		cooldown:  10 * time.Second,
		duration:  5 * time.Second,
		started:   time.Now(),
		logger:    logger,
	}
	p.capture = p.captureAll
	return p, nil
}

// Observe records the current tick rate and starts a capture in the
// background when it is a drop. It reports whether a capture started.
func (p *Profiler) Observe(tps float64, now time.Time, snap Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tps >= p.threshold || p.capturing {
		return false
	}
	// ebiten reports 0 until it has measured a full second
	if tps == 0 || now.Sub(p.started) < p.warmup {
		return false
	}
	if !p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.cooldown {
		return false
	}

	p.capturing = true
	p.lastCapture = now
	p.captures++

	baseName := fmt.Sprintf("tps-drop-%s-tps%.0f-%s", now.Format("20060102-150405"), tps, snap.Mode)
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Printf("tick rate dropped to %.0f, capturing %s (NumGC=%d HeapAlloc=%d KB)",
		tps, baseName, m.NumGC, m.HeapAlloc/1024)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.capture(baseName); err != nil {
			p.logger.Printf("profile capture failed: %v", err)
		}
		p.mu.Lock()
		p.capturing = false
		p.mu.Unlock()
	}()
	return true
}

// Wait blocks until any running capture has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

// Captures returns how many captures were started
func (p *Profiler) Captures() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.captures
}

// captureAll records the CPU profile and the trace in parallel
func (p *Profiler) captureAll(baseName string) error {
	var (
		wg               sync.WaitGroup
		cpuErr, traceErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName)
	}()
	wg.Wait()

	if cpuErr != nil {
		return cpuErr
	}
	return traceErr
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.dir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()

	p.logger.Printf("CPU profile saved to %s (view with: go tool pprof -http=:8080 %s)", path, path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.dir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()

	p.logger.Printf("trace saved to %s", path)
	return nil
}
