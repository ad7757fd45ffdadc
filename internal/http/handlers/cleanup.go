package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"fotostudio/internal/retention"
)

// forceDeleteConfirmation is the sentinel a caller must echo before the
// force-delete endpoint touches anything.
const forceDeleteConfirmation = "DELETE_ALL_IMAGES"

type cleanupRequest struct {
	MaxAgeHours *float64 `json:"maxAgeHours"`
	DryRun      bool     `json:"dryRun"`
}

type forceCleanupRequest struct {
	Confirm string `json:"confirm"`
}

// CleanupStats reports the current asset inventory without deleting anything.
func (a *App) CleanupStats(w http.ResponseWriter, r *http.Request) {
	report := retention.Stats(a.Config.OutputDir, time.Now())

	files := make([]map[string]any, 0, len(report.Files))
	for _, f := range report.Files {
		files = append(files, map[string]any{
			"name":      f.Name,
			"sizeKB":    roundKB(f.Size),
			"ageHours":  f.AgeHours,
			"canDelete": f.CanDelete,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": map[string]any{
			"totalFiles":  report.TotalFiles,
			"totalSize":   report.TotalSize,
			"totalSizeKB": roundKB(report.TotalSize),
			"totalSizeMB": roundMB(report.TotalSize),
			"files":       files,
		},
	})
}

// RunCleanup removes assets older than the requested window.
func (a *App) RunCleanup(w http.ResponseWriter, r *http.Request) {
	req := cleanupRequest{}
	if err := decodeBody(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "maxAgeHours must be a positive number")
		return
	}
	maxAgeHours := float64(retention.DefaultMaxAgeHours)
	if req.MaxAgeHours != nil {
		if *req.MaxAgeHours < 0 || math.IsNaN(*req.MaxAgeHours) {
			a.error(w, http.StatusBadRequest, "maxAgeHours must be a positive number")
			return
		}
		maxAgeHours = *req.MaxAgeHours
	}

	a.Logger.Info().
		Float64("max_age_hours", maxAgeHours).
		Bool("dry_run", req.DryRun).
		Msg("cleanup: starting run")

	result := retention.Run(a.Config.OutputDir, retention.Config{
		MaxAgeHours: maxAgeHours,
		DryRun:      req.DryRun,
	}, time.Now())

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"cleanup": cleanupPayload(result, nil),
	})
}

// ForceCleanup deletes every matching asset regardless of age. It refuses to
// act without the exact confirmation sentinel.
func (a *App) ForceCleanup(w http.ResponseWriter, r *http.Request) {
	var req forceCleanupRequest
	if err := decodeBody(r, &req); err != nil || req.Confirm != forceDeleteConfirmation {
		a.error(w, http.StatusBadRequest,
			`Missing confirmation. Send { "confirm": "DELETE_ALL_IMAGES" } to proceed.`)
		return
	}

	a.Logger.Info().Msg("cleanup: force-deleting all generated images")

	result := retention.Run(a.Config.OutputDir, retention.Config{MaxAgeHours: 0}, time.Now())

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"cleanup": cleanupPayload(result, map[string]any{
			"message": "All generated images have been deleted",
		}),
	})
}

func cleanupPayload(result retention.Result, extra map[string]any) map[string]any {
	payload := map[string]any{
		"deletedFiles":     result.DeletedFiles,
		"totalDeleted":     result.TotalDeleted,
		"totalSizeFreed":   result.TotalSize,
		"totalSizeFreedKB": roundKB(result.TotalSize),
		"totalSizeFreedMB": roundMB(result.TotalSize),
		"errors":           result.Errors,
		"dryRun":           result.DryRun,
	}
	for k, v := range extra {
		payload[k] = v
	}
	return payload
}

// decodeBody decodes an optional JSON body. An empty body is fine; malformed
// JSON or wrongly-typed fields are not.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func roundKB(bytes int64) int64 {
	return int64(math.Round(float64(bytes) / 1024))
}

func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
