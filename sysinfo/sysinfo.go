// SPDX-License-Identifier: MIT

// Package sysinfo reports the host the benchmark runs on and derives worker
// counts and memory needs from it.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Report is a snapshot of the host. Fields that could not be read stay zero.
type Report struct {
	OS              string  `json:"os"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	KernelVersion   string  `json:"kernel_version"`
	Arch            string  `json:"arch"`
	CPUModel        string  `json:"cpu_model"`
	CPUMHz          float64 `json:"cpu_mhz"`
	PhysicalCores   int     `json:"physical_cores"`
	LogicalCores    int     `json:"logical_cores"`
	GoMaxProcs      int     `json:"gomaxprocs"`
	MemTotal        uint64  `json:"mem_total"`
	MemAvailable    uint64  `json:"mem_available"`
	MemUsedPercent  float64 `json:"mem_used_percent"`
}

// Collect reads the host. Every probe is attempted; failures are joined into
// the returned error alongside a best-effort Report.
func Collect(ctx context.Context) (Report, error) {
	r := Report{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		LogicalCores: runtime.NumCPU(),
		GoMaxProcs:   runtime.GOMAXPROCS(0),
	}
	var errs []error

	if h, err := host.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sysinfo: host: %w", err))
	} else {
		r.Platform, r.PlatformVersion, r.KernelVersion = h.Platform, h.PlatformVersion, h.KernelVersion
		if h.KernelArch != "" {
			r.Arch = h.KernelArch
		}
	}

	if n, err := cpu.CountsWithContext(ctx, false); err != nil {
		errs = append(errs, fmt.Errorf("sysinfo: physical cores: %w", err))
	} else {
		r.PhysicalCores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		r.LogicalCores = n
	}

	if infos, err := cpu.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sysinfo: cpu: %w", err))
	} else if len(infos) > 0 {
		r.CPUModel, r.CPUMHz = infos[0].ModelName, infos[0].Mhz
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sysinfo: memory: %w", err))
	} else {
		r.MemTotal, r.MemAvailable, r.MemUsedPercent = vm.Total, vm.Available, vm.UsedPercent
	}

	return r, errors.Join(errs...)
}

// Lines renders the report as label/value pairs for display.
func (r Report) Lines() [][2]string {
	mhz := "n/a"
	if r.CPUMHz > 0 {
		mhz = fmt.Sprintf("%.2f MHz", r.CPUMHz)
	}

	return [][2]string{
		{"os", r.OS},
		{"platform", fmt.Sprintf("%s %s", r.Platform, r.PlatformVersion)},
		{"kernel", r.KernelVersion},
		{"arch", r.Arch},
		{"cpu", r.CPUModel},
		{"cpu frequency", mhz},
		{"physical cores", fmt.Sprint(r.PhysicalCores)},
		{"logical cores", fmt.Sprint(r.LogicalCores)},
		{"GOMAXPROCS", fmt.Sprint(r.GoMaxProcs)},
		{"memory total", humanize.IBytes(r.MemTotal)},
		{"memory available", humanize.IBytes(r.MemAvailable)},
		{"memory used", fmt.Sprintf("%.1f%%", r.MemUsedPercent)},
	}
}
