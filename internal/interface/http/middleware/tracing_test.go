package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupSpanRecorder 临时替换全局TracerProvider，结束后恢复
func setupSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	return recorder
}

func TestTracing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("每个请求产生一条以路由模板命名的server_span", func(t *testing.T) {
		recorder := setupSpanRecorder(t)

		r := gin.New()
		r.Use(Tracing())
		r.GET("/api/v1/books/:id", func(c *gin.Context) {
			// handler里能拿到当前span
			span := trace.SpanFromContext(c.Request.Context())
			assert.True(t, span.SpanContext().IsValid())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/books/42", nil)
		r.ServeHTTP(w, req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "GET /api/v1/books/:id", spans[0].Name())
		assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

		attrs := spans[0].Attributes()
		assert.Contains(t, attrs, attribute.String("http.route", "/api/v1/books/:id"))
		assert.Contains(t, attrs, attribute.Int("http.status_code", http.StatusOK))
	})

	t.Run("接续上游traceparent的trace", func(t *testing.T) {
		recorder := setupSpanRecorder(t)

		r := gin.New()
		r.Use(Tracing())
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		const upstreamTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("traceparent", "00-"+upstreamTraceID+"-00f067aa0ba902b7-01")
		r.ServeHTTP(w, req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, upstreamTraceID, spans[0].SpanContext().TraceID().String())
	})

	t.Run("未匹配路由的span名归入unmatched", func(t *testing.T) {
		recorder := setupSpanRecorder(t)

		r := gin.New()
		r.Use(Tracing())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
		r.ServeHTTP(w, req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "GET unmatched", spans[0].Name())
		assert.Contains(t, spans[0].Attributes(), attribute.Int("http.status_code", http.StatusNotFound))
	})
}
