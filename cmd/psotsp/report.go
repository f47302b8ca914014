package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/psotsp/pso"
)

type sysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	Memory   string `json:"memory"`
}

type report struct {
	Instance    string      `json:"instance"`
	Cities      int         `json:"cities"`
	Options     pso.Options `json:"options"`
	BestCost    float64     `json:"best_cost"`
	BestRoute   []int       `json:"best_route"`
	Iterations  int         `json:"iterations"`
	History     []float64   `json:"history"`
	Elapsed     string      `json:"elapsed"`
	Interrupted bool        `json:"interrupted"`
	System      sysInfo     `json:"system"`
}

func newReport(name string, cities int, opts pso.Options, res pso.Result, elapsed time.Duration, interrupted bool) report {
	return report{
		Instance:    name,
		Cities:      cities,
		Options:     opts,
		BestCost:    res.BestCost,
		BestRoute:   res.BestRoute,
		Iterations:  res.Iterations,
		History:     res.History,
		Elapsed:     elapsed.String(),
		Interrupted: interrupted,
		System:      systemInfo(),
	}
}

// systemInfo describes the host; probes that fail leave their field empty.
func systemInfo() sysInfo {
	var info sysInfo
	if h, err := host.Info(); err == nil {
		info.Platform = h.Platform
	}
	if cs, err := cpu.Info(); err == nil && len(cs) > 0 {
		info.CPU = cs[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.Memory = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}

	return info
}

func (r report) writeFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
