package cli

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mchmarny/leadcalc/pkg/data"
	"github.com/mchmarny/leadcalc/pkg/metrics"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/scenario"
)

// CalculateRequest is the body of POST /api/calculate.
type CalculateRequest struct {
	Profile  scenario.ProfileSpec  `json:"profile"`
	Exposure scenario.ExposureSpec `json:"exposure"`
}

// CumulativeRequest is the body of POST /api/cumulative.
type CumulativeRequest struct {
	Profile   scenario.ProfileSpec    `json:"profile"`
	Exposures []scenario.ExposureSpec `json:"exposures"`
}

// ScenariosRequest is the body of POST /api/scenarios.
type ScenariosRequest struct {
	Scenarios []scenario.Scenario `json:"scenarios"`
}

type apiHandler struct {
	db          *sql.DB
	metrics     *metrics.Instruments
	concurrency int
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps input and lookup errors to client errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, data.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, scenario.ErrInvalidExposure),
		errors.Is(err, model.ErrInvalidAgeGroup),
		errors.Is(err, model.ErrInvalidCountry),
		errors.Is(err, model.ErrInvalidRoute),
		errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, model.ErrInvalidLeadUnit),
		errors.Is(err, model.ErrInvalidBodyWeight):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, serverMaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version,
	})
}

func (h *apiHandler) params(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := scenario.ProfileSpec{
		AgeGroup: q.Get("age_group"),
		Country:  q.Get("country"),
	}
	if v := q.Get("body_weight_kg"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid body_weight_kg: "+v)
			return
		}
		spec.BodyWeightKg = &f
	}

	p, err := spec.Profile()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newParamsView(p))
}

func (h *apiHandler) products(w http.ResponseWriter, r *http.Request) {
	var (
		items []*ProductItem
		err   error
	)

	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		items, err = searchProducts(h.db, q, productSearchLimitDefault)
	} else {
		items, err = listProducts(h.db, r.URL.Query().Get("category"))
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to list products", "error", err)
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *apiHandler) product(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, err := findProduct(h.db, id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to get product", "id", id, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *apiHandler) calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.evaluate(w, r, scenario.Scenario{
		Name:      req.Exposure.ProductID,
		Profile:   req.Profile,
		Exposures: []scenario.ExposureSpec{req.Exposure},
	})
}

func (h *apiHandler) cumulative(w http.ResponseWriter, r *http.Request) {
	var req CumulativeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.evaluate(w, r, scenario.Scenario{
		Name:      scenario.KindCumulative,
		Profile:   req.Profile,
		Exposures: req.Exposures,
	})
}

func (h *apiHandler) evaluate(w http.ResponseWriter, r *http.Request, s scenario.Scenario) {
	res, err := scenario.Evaluate(s, data.ProductLookup(h.db))
	h.metrics.RecordScenario(r.Context(), err)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to evaluate", "name", s.Name, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}
	h.metrics.RecordCalculation(r.Context(), res.Kind)
	writeJSON(w, http.StatusOK, res)
}

func (h *apiHandler) scenarios(w http.ResponseWriter, r *http.Request) {
	var req ScenariosRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(w, http.StatusBadRequest, "no scenarios defined")
		return
	}

	results, err := scenario.RunAll(r.Context(), req.Scenarios, data.ProductLookup(h.db), h.concurrency, h.metrics)
	if err != nil {
		slog.Error("failed to run scenarios", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to run scenarios")
		return
	}
	writeJSON(w, http.StatusOK, results)
}
