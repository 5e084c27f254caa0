package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jobsift/internal/observability"
	"jobsift/internal/scoring"
	"jobsift/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the corpus analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobsift.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.Jobs) == 0 {
			err := fmt.Errorf("missing jobs")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing jobs", "jobs field must contain at least one job", http.StatusBadRequest)
			return
		}

		// Default IDs for callers that omit them
		for i := range req.Jobs {
			if req.Jobs[i].ID == 0 {
				req.Jobs[i].ID = i + 1
			}
		}

		dedupe := s.AppConfig.Analysis.Dedupe
		if req.Dedupe != nil {
			dedupe = *req.Dedupe
		}

		span.SetAttributes(
			attribute.Int("request.job_count", len(req.Jobs)),
			attribute.Bool("request.dedupe", dedupe),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()
		var result types.CorpusAnalysis
		err := metrics.TrackAnalysis(ctx, "analyze", len(req.Jobs), func(ctx context.Context) error {
			result = s.Analyzer().AnalyzeAllJobs(req.Jobs, dedupe)
			return nil
		})
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			writeErrorResponse(w, "Failed to analyze jobs", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordIngestion(ctx, len(req.Jobs), len(req.Jobs)-result.TotalJobs, "api")

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.total_jobs", result.TotalJobs),
			attribute.Int("response.duplicates_removed", len(req.Jobs)-result.TotalJobs),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// ScoreResponse pairs scored jobs with their classification summary
type ScoreResponse struct {
	Summary scoring.Summary     `json:"summary"`
	Jobs    []scoring.ScoredJob `json:"jobs"`
}

// createScoreHandler wraps the job scoring handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobsift.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.Jobs) == 0 {
			err := fmt.Errorf("missing jobs")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing jobs", "jobs field must contain at least one job", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_count", len(req.Jobs)),
			attribute.String("operation", "score"),
		)

		scored := scoring.ScoreJobs(req.Jobs)
		summary := scoring.Summarize(scored)

		metrics := om.GetMetrics()
		metrics.RecordJobsScored(ctx, len(scored))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.apply", summary.Apply),
			attribute.Int("response.stretch", summary.Stretch),
			attribute.Int("response.ignore", summary.Ignore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ScoreResponse{Summary: summary, Jobs: scored}); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := originalMiddleware(next)
		return func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			limited(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), r.URL.Path)
			}
		}
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
