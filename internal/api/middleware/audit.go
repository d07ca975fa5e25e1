package middleware

import (
	"bytes"
	"context"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/logger"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/mongo"
)

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < 16384 {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware logs every request/response pair and persists an
// access entry. The persistence is best effort and never delays the
// response.
func AuditMiddleware(auditRepo mongo.AuditLogRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", string(reqBody)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", latency),
			log.String("res_body", w.body.String()),
		)

		if auditRepo == nil {
			return
		}

		entry := &mongo.AuditLogModel{
			TraceID:   c.GetString(logger.TraceIDKey),
			UserID:    c.GetUint64("user_id"),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     decodedQuery,
			Status:    c.Writer.Status(),
			ClientIP:  c.ClientIP(),
			LatencyMS: latency.Milliseconds(),
		}
		go func() {
			writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := auditRepo.CreateEntry(writeCtx, entry); err != nil {
				log.Warn("persist audit entry failed", "err", err)
			}
		}()
	}
}
