package server

import (
	"context"
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/brokerbook/internal/services"
)

type healthResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Database string            `json:"database"`
	Disk     *diskUsage        `json:"disk,omitempty"`
	MemoryPC float64           `json:"memory_used_percent,omitempty"`
	Records  services.Summary  `json:"records"`
	Checked  time.Time         `json:"checked_at"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type diskUsage struct {
	Path        string  `json:"path"`
	TotalBytes  uint64  `json:"total_bytes"`
	FreeBytes   uint64  `json:"free_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// handleHealth reports database reachability and resource usage of the data
// directory. Only a failing database makes the service unhealthy. With
// ?deep=1 the database also runs an integrity check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:   "healthy",
		Service:  "brokerbook",
		Database: "ok",
		Records:  s.dataset.Summary(),
		Checked:  time.Now().UTC(),
	}
	status := http.StatusOK

	check := s.db.QuickCheck
	if r.URL.Query().Get("deep") == "1" {
		check = s.db.HealthCheck
	}
	if err := check(ctx); err != nil {
		s.log.Error().Err(err).Msg("Database health check failed")
		resp.Status = "unhealthy"
		resp.Database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if usage, err := disk.UsageWithContext(ctx, s.dataDir); err != nil {
		s.log.Warn().Err(err).Str("path", s.dataDir).Msg("Failed to get disk usage")
		resp.addError("disk", err)
	} else {
		resp.Disk = &diskUsage{
			Path:        s.dataDir,
			TotalBytes:  usage.Total,
			FreeBytes:   usage.Free,
			UsedPercent: usage.UsedPercent,
		}
	}

	if memStat, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
		resp.addError("memory", err)
	} else {
		resp.MemoryPC = memStat.UsedPercent
	}

	s.writeJSON(w, status, resp)
}

func (h *healthResponse) addError(key string, err error) {
	if h.Errors == nil {
		h.Errors = make(map[string]string)
	}
	h.Errors[key] = err.Error()
}
