package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fotostudio/internal/retention"
	"fotostudio/pkg/zip"
)

// ImagesArchive streams every current matching asset as a zip download, so a
// user can grab their whole session output before retention prunes it.
func (a *App) ImagesArchive(w http.ResponseWriter, r *http.Request) {
	assets, errs := retention.Scan(a.Config.OutputDir, retention.DefaultPatterns)
	if len(assets) == 0 {
		if len(errs) > 0 {
			a.error(w, http.StatusInternalServerError, "failed to read output directory")
			return
		}
		a.error(w, http.StatusNotFound, "no generated images available")
		return
	}

	entries := make([]zip.Asset, 0, len(assets))
	for _, asset := range assets {
		data, err := a.Store.Read(r.Context(), asset.Name)
		if err != nil {
			a.Logger.Warn().Err(err).Str("file", asset.Name).Msg("archive: skipping unreadable asset")
			continue
		}
		entries = append(entries, zip.Asset{Filename: asset.Name, MIME: "image/png", Data: data})
	}
	if len(entries) == 0 {
		a.error(w, http.StatusNotFound, "no generated images available")
		return
	}

	archive, err := zip.ArchiveAssets(entries)
	if err != nil {
		a.Logger.Error().Err(err).Msg("archive: failed to build zip")
		a.error(w, http.StatusInternalServerError, "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=generated-images-%s.zip", time.Now().Format("20060102-150405")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
