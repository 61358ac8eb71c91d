package briefing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"briefing-proxy/internal/handler/http/respond"
	briefUC "briefing-proxy/internal/usecase/briefing"
)

// Summarizer is the use case behind the handler.
type Summarizer interface {
	Summarize(ctx context.Context, htmlContent string) (*briefUC.Result, error)
}

// SummarizeHandler serves POST /api/summarize.
type SummarizeHandler struct{ Svc Summarizer }

// ServeHTTP returns the cached or freshly generated briefing.
//
// Status codes:
//   - 200: {summary, summaryHtml, timestamp, isCached}
//   - 400: malformed JSON, missing htmlContent or no extractable articles
//   - 413: body larger than the configured limit
//   - 500: API key not configured or the generator failed
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Message(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respond.SafeErrorV2(w, r, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "invalid JSON body", err))
		return
	}

	result, err := h.Svc.Summarize(r.Context(), req.HTMLContent)
	if err != nil {
		respond.SafeErrorV2(w, r, http.StatusInternalServerError, toAppError(err))
		return
	}

	respond.JSON(w, http.StatusOK, SummarizeResponse{
		Summary:      result.Summary,
		SummaryHTML:  result.SummaryHTML,
		Timestamp:    formatTimestamp(result.Timestamp),
		IsCached:     result.IsCached,
		ArticleCount: result.ArticleCount,
	})
}

func toAppError(err error) error {
	switch {
	case errors.Is(err, briefUC.ErrGeneratorNotConfigured):
		return respond.NewAppError(http.StatusInternalServerError, briefUC.ErrGeneratorNotConfigured.Error(), nil)
	case errors.Is(err, briefUC.ErrMissingHTML):
		return respond.NewAppError(http.StatusBadRequest, briefUC.ErrMissingHTML.Error(), nil)
	case errors.Is(err, briefUC.ErrNoContent):
		return respond.NewAppError(http.StatusBadRequest, briefUC.ErrNoContent.Error(), nil)
	case errors.Is(err, briefUC.ErrGenerationFailed):
		return respond.NewAppError(http.StatusInternalServerError, briefUC.ErrGenerationFailed.Error(), err)
	default:
		return err
	}
}
