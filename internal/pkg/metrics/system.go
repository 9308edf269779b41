package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const (
	DefaultCollectInterval = 5 * time.Second

	cpuSampleWindow = time.Second
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ProcessCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_cpu_usage_percent",
			Help: "CPU usage of the booking process",
		},
	)

	ProcessResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_resident_memory_usage_bytes",
			Help: "Resident set size of the booking process",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_goroutines",
			Help: "Number of goroutines, grows with open wizard sessions and pending autosaves",
		},
	)
)

type collector struct {
	// nil, если процесс недоступен gopsutil (например, в песочнице)
	self *process.Process
}

func newCollector() *collector {
	self, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // pid помещается в int32
	if err != nil {
		return &collector{}
	}
	return &collector{self: self}
}

// StartSystemMetricsCollector собирает системные метрики до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	c := newCollector()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.collect(ctx)
			}
		}
	}()
}

// collect ошибки gopsutil пропускаются: метрика остается с прошлым значением
func (c *collector) collect(ctx context.Context) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if c.self != nil {
		if percent, err := c.self.CPUPercentWithContext(ctx); err == nil {
			ProcessCPUUsage.Set(percent)
		}
		if memInfo, err := c.self.MemoryInfoWithContext(ctx); err == nil {
			ProcessResidentMemory.Set(float64(memInfo.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
