package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akolanti/RagAPI/internal/handlers"
	"github.com/akolanti/RagAPI/internal/metrics"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var GetHandler = Wrap(handlers.GetHandler)

var PostDocumentsHandler = Wrap(handlers.PostDocumentsHandler)
var GetDocumentsHandler = Wrap(handlers.GetDocumentsHandler)
var DeleteDocumentsHandler = Wrap(handlers.DeleteDocumentsHandler)
var GetStatsHandler = Wrap(handlers.GetStatsHandler)
var PostSearchHandler = Wrap(handlers.PostSearchHandler)
var ChatHandler = Wrap(handlers.ChatHandler)
var GetChatHistoryHandler = Wrap(handlers.GetChatHistoryHandler)
var DeleteChatHandler = Wrap(handlers.DeleteChatHandler)
var GetModelsHandler = Wrap(handlers.GetModelsHandler)
var PullModelHandler = Wrap(handlers.PullModelHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		start := time.Now()
		next(rec, re.req)
		metrics.CaptureRequestMetrics(strconv.Itoa(rec.Status), time.Since(start))

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = rateLimiter(re)

	return re
}
