package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fotostudio/internal/generate"
	"fotostudio/internal/infra"
	"fotostudio/internal/storage"
)

// App bundles the handlers' dependencies: configuration, logging, the asset
// store and the four provider adapters.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Store     *storage.FileStore
	TextImage *generate.TextImageAdapter
	Product   *generate.ProductAdapter
	Fashion   *generate.FashionAdapter
	Dalle     *generate.DalleAdapter
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the {success:false, error} envelope the admin endpoints use.
func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "error": message})
}

// generateError writes a normalized generation failure: {error, code, status}
// at the mapped HTTP status. Anything that is not a *generate.Error is an
// internal error; nothing is ever downgraded to a success.
func (a *App) generateError(w http.ResponseWriter, err error) {
	var genErr *generate.Error
	if !errors.As(err, &genErr) {
		genErr = &generate.Error{
			Code:    generate.CodeInternalError,
			Status:  http.StatusInternalServerError,
			Message: err.Error(),
		}
	}
	a.json(w, genErr.Status, genErr)
}
