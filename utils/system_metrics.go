package utils

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type HostStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
}

// GetHostStats samples CPU usage over interval plus current virtual memory.
// Sampling failures are logged and leave the corresponding fields zeroed.
func GetHostStats(ctx context.Context, interval time.Duration) HostStats {
	var stats HostStats

	percentage, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		WithContext(ctx).WithError(err).Warn("Error getting CPU usage")
	} else if len(percentage) > 0 {
		stats.CPUPercent = percentage[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		WithContext(ctx).WithError(err).Warn("Error getting memory usage")
	} else {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / (1024 * 1024)
	}

	return stats
}
