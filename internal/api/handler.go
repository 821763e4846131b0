package api

import (
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/kdd"
	"NopeNet/internal/engine/recommender"
	"NopeNet/internal/metrics"
	"NopeNet/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	sourceAPI    = "api"
	maxBodyBytes = 32 << 20
)

// DetectRequest is the JSON body of POST /api/v1/detect.
type DetectRequest struct {
	Input string `json:"input"`
}

// DetectResponse is returned by POST /api/v1/detect.
type DetectResponse struct {
	Batch           *model.DetectionBatch  `json:"batch"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// RecommendRequest is the JSON body of POST /api/v1/recommendations.
type RecommendRequest struct {
	Results []model.DetectionResult `json:"results"`
}

// ValidationError is returned with 422 when the input is not KDD formatted.
// Sample holds a well-formed record the caller can retry with.
type ValidationError struct {
	Error  string `json:"error"`
	Sample string `json:"sample"`
}

// Handler holds the dependencies for API handlers.
type Handler struct {
	classifier *classifier.Classifier
	metrics    *metrics.Metrics
	minFields  int
}

// NewHandler creates an API handler. m may be nil.
func NewHandler(c *classifier.Classifier, m *metrics.Metrics, minFields int) *Handler {
	return &Handler{classifier: c, metrics: m, minFields: minFields}
}

// Router registers every route on a new gorilla/mux router.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/detect", h.detectHandler).Methods("POST")
	r.HandleFunc("/api/v1/recommendations", h.recommendationsHandler).Methods("POST")
	r.HandleFunc("/api/v1/sample", h.sampleHandler).Methods("GET")
	r.HandleFunc("/healthz", healthHandler).Methods("GET")
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics.Handler()).Methods("GET")
	}
	return r
}

// detectHandler classifies a block of KDD text sent as JSON or text/plain.
func (h *Handler) detectHandler(w http.ResponseWriter, r *http.Request) {
	// 1. Accept either a JSON envelope or the raw text body
	input, err := readInput(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to decode request: %v", err), http.StatusBadRequest)
		return
	}

	// 2. Reject non-KDD input with a sample the caller can retry with
	if err := kdd.Validate(input, h.minFields); err != nil {
		h.metrics.ObserveInvalid(sourceAPI)
		writeJSON(w, http.StatusUnprocessableEntity, ValidationError{Error: err.Error(), Sample: kdd.SampleRecord})
		return
	}

	// 3. Classify and respond with the batch and its recommendations
	batch := h.classifier.Classify(input)
	h.metrics.ObserveBatch(sourceAPI, batch)
	log.Printf("Classified batch %s: %d records, %d attacks.", batch.ID, batch.TotalPackets, batch.AttacksDetected)

	writeJSON(w, http.StatusOK, DetectResponse{
		Batch:           batch,
		Recommendations: recommender.Recommend(batch.Results),
	})
}

// recommendationsHandler derives recommendations from already classified results.
func (h *Handler) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("failed to decode request: %v", err), http.StatusBadRequest)
		return
	}
	for i, res := range req.Results {
		if !res.AttackType.Valid() {
			http.Error(w, fmt.Sprintf("result %d has unknown attackType '%s'", i, res.AttackType), http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, http.StatusOK, recommender.Recommend(req.Results))
}

// sampleHandler returns the single fix-up record, or the multi-line dataset
// when called with ?full=1.
func (h *Handler) sampleHandler(w http.ResponseWriter, r *http.Request) {
	if full, _ := strconv.ParseBool(r.URL.Query().Get("full")); full {
		writeJSON(w, http.StatusOK, DetectRequest{Input: kdd.SampleDataset})
		return
	}
	writeJSON(w, http.StatusOK, DetectRequest{Input: kdd.SampleRecord})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func readInput(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return string(body), nil
	}

	var req DetectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	return req.Input, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to marshal response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBytes)
}

