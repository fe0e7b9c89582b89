package utils

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current CPU usage as a percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_percent",
			Help: "Current memory usage as a percentage",
		},
	)
)

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(time.Second, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}

// GetMemoryUsage returns the current memory usage as a percentage
func GetMemoryUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Error getting memory usage: %v", err)
		return 0
	}
	return vm.UsedPercent
}

// CollectSystemMetrics refreshes the system gauges every interval until
// the process exits. Run it in its own goroutine.
func CollectSystemMetrics(interval time.Duration) {
	for {
		SystemCPUUsage.Set(GetCPUUsage())
		SystemMemoryUsage.Set(GetMemoryUsage())
		time.Sleep(interval)
	}
}
