package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Chia168168/Recipe-1/internal/domain/conversion"
	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
	"github.com/Chia168168/Recipe-1/internal/domain/reference"
)

// RecipeStore is what the handlers need from recipe persistence.
type RecipeStore interface {
	Save(ctx context.Context, rec recipes.Recipe) error
	Update(ctx context.Context, oldTitle string, rec recipes.Recipe) (int64, error)
	Delete(ctx context.Context, title string) (int64, error)
	ClearAll(ctx context.Context) error
	List(ctx context.Context) ([]recipes.Recipe, error)
	GetByTitle(ctx context.Context, title string) (*recipes.Recipe, error)
	Rows(ctx context.Context, limit int) ([]recipes.Row, error)
}

// ReferenceStore is what the handlers need from the hydration table.
type ReferenceStore interface {
	List(ctx context.Context) ([]reference.Entry, error)
	Table(ctx context.Context) (map[string]float64, error)
	Upsert(ctx context.Context, name string, hydration float64) error
	Delete(ctx context.Context, name string) (int64, error)
}

type Server struct {
	srv       *http.Server
	log       *slog.Logger
	recipes   RecipeStore
	reference ReferenceStore
	engine    *conversion.Engine
}

func New(addr string, log *slog.Logger, recipeStore RecipeStore, refStore ReferenceStore,
	engine *conversion.Engine, exposeMetrics bool) *Server {

	s := &Server{
		log:       log,
		recipes:   recipeStore,
		reference: refStore,
		engine:    engine,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.HandleFunc("GET /api/recipes", s.instrument("recipes_list", s.handleListRecipes))
	mux.HandleFunc("POST /api/save_recipe", s.instrument("recipe_save", s.handleSaveRecipe))
	mux.HandleFunc("POST /api/update_recipe", s.instrument("recipe_update", s.handleUpdateRecipe))
	mux.HandleFunc("DELETE /api/delete_recipe", s.instrument("recipe_delete", s.handleDeleteRecipe))
	mux.HandleFunc("DELETE /api/clear_all", s.instrument("clear_all", s.handleClearAll))
	mux.HandleFunc("GET /api/diagnose", s.instrument("diagnose", s.handleDiagnose))

	mux.HandleFunc("GET /api/ingredients_db", s.instrument("ingredients_list", s.handleListIngredientsDB))
	mux.HandleFunc("POST /api/save_ingredient_db", s.instrument("ingredient_save", s.handleSaveIngredientDB))
	mux.HandleFunc("DELETE /api/delete_ingredient_db", s.instrument("ingredient_delete", s.handleDeleteIngredientDB))

	mux.HandleFunc("POST /api/calculate_conversion", s.instrument("calculate_conversion", s.handleConversion))
	mux.HandleFunc("POST /api/calculate_hydration", s.instrument("calculate_hydration", s.handleHydration))
	mux.HandleFunc("GET /api/export_excel", s.instrument("export_excel", s.handleExportExcel))

	s.srv = &http.Server{Addr: addr, Handler: withCORS(mux)}
	return s
}

// Handler exposes the routed handler (used by tests).
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
