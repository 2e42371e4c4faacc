package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Chia168168/Recipe-1/internal/domain/conversion"
	"github.com/Chia168168/Recipe-1/internal/domain/recipes"
	"github.com/Chia168168/Recipe-1/internal/export"
	"github.com/Chia168168/Recipe-1/internal/infra/metrics"
)

/* wire types — field names match the browser UI payloads */

type ingredientPayload struct {
	Group   string  `json:"group"`
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Percent any     `json:"percent"` // "62.5%", "50", 0.5 — normalized on write
	Desc    string  `json:"desc"`
}

type recipePayload struct {
	Title       string              `json:"title"`
	OldTitle    string              `json:"oldTitle"`
	NewTitle    string              `json:"newTitle"`
	Ingredients []ingredientPayload `json:"ingredients"`
	Steps       string              `json:"steps"`
	BakingInfo  recipes.Baking      `json:"bakingInfo"`
}

type ingredientView struct {
	Group   string  `json:"group"`
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Percent string  `json:"percent"`
	Desc    string  `json:"desc"`
}

type recipeView struct {
	Title       string           `json:"title"`
	Ingredients []ingredientView `json:"ingredients"`
	Steps       string           `json:"steps"`
	Timestamp   string           `json:"timestamp"`
	Baking      recipes.Baking   `json:"baking"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (p recipePayload) toRecipe(title string) recipes.Recipe {
	rec := recipes.Recipe{
		Title:  title,
		Steps:  p.Steps,
		Baking: p.BakingInfo,
	}
	for _, ing := range p.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipes.Ingredient{
			Group:       ing.Group,
			Name:        ing.Name,
			Weight:      ing.Weight,
			Percent:     conversion.Normalize(ing.Percent),
			Description: ing.Desc,
		})
	}
	return rec
}

func viewOf(rec recipes.Recipe) recipeView {
	v := recipeView{
		Title:       rec.Title,
		Ingredients: ingredientViews(rec.Ingredients),
		Steps:       rec.Steps,
		Baking:      rec.Baking,
	}
	if !rec.Timestamp.IsZero() {
		v.Timestamp = rec.Timestamp.Format(time.RFC3339)
	}
	return v
}

func ingredientViews(ings []recipes.Ingredient) []ingredientView {
	out := make([]ingredientView, 0, len(ings))
	for _, ing := range ings {
		out = append(out, ingredientView{
			Group:   ing.Group,
			Name:    ing.Name,
			Weight:  ing.Weight,
			Percent: conversion.FormatPercentPtr(ing.Percent),
			Desc:    ing.Description,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, statusResponse{Status: "error", Message: msg})
}

/* recipes */

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	recs, err := s.recipes.List(r.Context())
	if err != nil {
		s.log.Error("list recipes failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食譜失敗")
		return
	}
	views := make([]recipeView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, viewOf(rec))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var p recipePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}
	if strings.TrimSpace(p.Title) == "" {
		writeError(w, http.StatusBadRequest, "食譜名稱不可為空")
		return
	}
	if err := s.recipes.Save(r.Context(), p.toRecipe(p.Title)); err != nil {
		s.log.Error("save recipe failed", "title", p.Title, "err", err)
		writeError(w, http.StatusInternalServerError, "儲存食譜失敗")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var p recipePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}
	if strings.TrimSpace(p.OldTitle) == "" || strings.TrimSpace(p.NewTitle) == "" {
		writeError(w, http.StatusBadRequest, "食譜名稱不可為空")
		return
	}
	deleted, err := s.recipes.Update(r.Context(), p.OldTitle, p.toRecipe(p.NewTitle))
	if err != nil {
		s.log.Error("update recipe failed", "old", p.OldTitle, "new", p.NewTitle, "err", err)
		writeError(w, http.StatusInternalServerError, "更新食譜失敗")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: fmt.Sprintf("已更新食譜：%s → %s (刪除 %d 行，新增 %d 行)", p.OldTitle, p.NewTitle, deleted, len(p.Ingredients)),
	})
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	deleted, err := s.recipes.Delete(r.Context(), title)
	if err != nil {
		s.log.Error("delete recipe failed", "title", title, "err", err)
		writeError(w, http.StatusInternalServerError, "刪除食譜失敗")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: fmt.Sprintf("已刪除食譜：%s (%d 行數據)", title, deleted),
	})
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.recipes.ClearAll(r.Context()); err != nil {
		s.log.Error("clear all failed", "err", err)
		writeError(w, http.StatusInternalServerError, "清除數據失敗")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "已清除所有數據"})
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	rows, err := s.recipes.Rows(r.Context(), 5)
	if err != nil {
		s.log.Error("diagnose failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取數據失敗")
		return
	}
	type rowView struct {
		ID          int64    `json:"id"`
		Title       string   `json:"title"`
		GroupName   string   `json:"group_name"`
		Ingredient  string   `json:"ingredient"`
		Weight      float64  `json:"weight"`
		Percent     *float64 `json:"percent"`
		Description string   `json:"description"`
		Steps       string   `json:"steps"`
		Timestamp   string   `json:"timestamp"`
		TopHeat     int      `json:"top_heat"`
		BottomHeat  int      `json:"bottom_heat"`
		BakeTime    int      `json:"bake_time"`
		Convection  bool     `json:"convection"`
		Steam       bool     `json:"steam"`
	}
	out := make([]rowView, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowView{
			ID: row.ID, Title: row.Title, GroupName: row.GroupName,
			Ingredient: row.Ingredient, Weight: row.Weight, Percent: row.Percent,
			Description: row.Description, Steps: row.Steps,
			Timestamp: row.Timestamp.Format(time.RFC3339),
			TopHeat:   row.TopHeat, BottomHeat: row.BottomHeat, BakeTime: row.BakeTime,
			Convection: row.Convection, Steam: row.Steam,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

/* ingredient hydration reference table */

func (s *Server) handleListIngredientsDB(w http.ResponseWriter, r *http.Request) {
	entries, err := s.reference.List(r.Context())
	if err != nil {
		s.log.Error("list ingredient db failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食材資料庫失敗")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSaveIngredientDB(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Name      string  `json:"name"`
		Hydration float64 `json:"hydration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "請輸入食材名稱")
		return
	}
	if err := s.reference.Upsert(r.Context(), p.Name, p.Hydration); err != nil {
		s.log.Error("upsert ingredient failed", "name", p.Name, "err", err)
		writeError(w, http.StatusInternalServerError, "儲存食材失敗")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: fmt.Sprintf("已更新食材：%s", p.Name),
	})
}

func (s *Server) handleDeleteIngredientDB(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	deleted, err := s.reference.Delete(r.Context(), name)
	if err != nil {
		s.log.Error("delete ingredient failed", "name", name, "err", err)
		writeError(w, http.StatusInternalServerError, "刪除食材失敗")
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("找不到食材：%s", name))
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: fmt.Sprintf("已刪除食材：%s", name),
	})
}

/* computations */

func (s *Server) handleConversion(w http.ResponseWriter, r *http.Request) {
	var p struct {
		RecipeTitle                string  `json:"recipeTitle"`
		NewTotalFlour              float64 `json:"newTotalFlour"`
		IncludeNonPercentageGroups bool    `json:"includeNonPercentageGroups"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		metrics.ConversionsTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	rec, err := s.recipes.GetByTitle(r.Context(), p.RecipeTitle)
	if err != nil {
		s.log.Error("load recipe for conversion failed", "title", p.RecipeTitle, "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食譜失敗")
		return
	}
	if rec == nil {
		metrics.ConversionsTotal.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, "找不到指定的食譜")
		return
	}

	table, err := s.reference.Table(r.Context())
	if err != nil {
		s.log.Error("load reference table failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食材資料庫失敗")
		return
	}

	res, err := s.engine.Convert(*rec, table, p.NewTotalFlour, p.IncludeNonPercentageGroups)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("invalid").Inc()
		switch {
		case errors.Is(err, conversion.ErrNoFlour):
			writeError(w, http.StatusBadRequest, "此食譜沒有麵粉食材或麵粉重量為0")
		case errors.Is(err, conversion.ErrInvalidTargetFlour):
			writeError(w, http.StatusBadRequest, "新總麵粉量必須大於 0")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	metrics.ConversionsTotal.WithLabelValues("success").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "success",
		"originalTotalFlour": res.OriginalTotalFlour,
		"newTotalFlour":      res.NewTotalFlour,
		"conversionRatio":    res.Ratio,
		"ingredients":        ingredientViews(res.Ingredients),
		"recipe":             viewOf(*rec),
	})
}

func (s *Server) handleHydration(w http.ResponseWriter, r *http.Request) {
	var p struct {
		RecipeTitle string `json:"recipeTitle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	rec, err := s.recipes.GetByTitle(r.Context(), p.RecipeTitle)
	if err != nil {
		s.log.Error("load recipe for hydration failed", "title", p.RecipeTitle, "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食譜失敗")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "找不到指定的食譜")
		return
	}

	table, err := s.reference.Table(r.Context())
	if err != nil {
		s.log.Error("load reference table failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取食材資料庫失敗")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "success",
		"hydration": s.engine.Classifier.Hydration(rec.Ingredients, table),
	})
}

/* export */

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	rows, err := s.recipes.Rows(r.Context(), 0)
	if err != nil {
		s.log.Error("load rows for export failed", "err", err)
		writeError(w, http.StatusInternalServerError, "讀取數據失敗")
		return
	}
	buf, err := export.Workbook(rows)
	if err != nil {
		s.log.Error("build workbook failed", "err", err)
		writeError(w, http.StatusInternalServerError, "匯出 Excel 失敗")
		return
	}
	metrics.ExcelExportsTotal.Inc()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="recipes.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
