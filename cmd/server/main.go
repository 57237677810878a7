package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/go_pair_metrics/internal/core/domain"
	"github.com/baditaflorin/go_pair_metrics/pkg/bow"
	"github.com/baditaflorin/go_pair_metrics/pkg/set"
	"github.com/baditaflorin/go_pair_metrics/pkg/stringsim"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultCacheSize      = 4096
)

// Shared metric instances
var (
	setComparator    *set.Comparator[string]
	stringComparator *stringsim.Comparator
	distanceEngine   *stringsim.DistanceEngine
	bowComparator    *bow.Comparator

	logger l.Logger
)

// SetRequest carries two sets of string elements plus optional Tversky weights.
type SetRequest struct {
	A     []string `json:"a"`
	B     []string `json:"b"`
	Alpha *float64 `json:"alpha,omitempty"`
	Beta  *float64 `json:"beta,omitempty"`
}

// StringRequest carries two strings plus optional Jaro-Winkler tunables.
type StringRequest struct {
	S1             string   `json:"s1"`
	S2             string   `json:"s2"`
	ScalingFactor  *float64 `json:"scaling_factor,omitempty"`
	BoostThreshold *float64 `json:"boost_threshold,omitempty"`
}

// VectorRequest carries two sparse token-frequency vectors.
type VectorRequest struct {
	A map[string]float64 `json:"a"`
	B map[string]float64 `json:"b"`
}

// Response represents a metric computation response.
type Response struct {
	Metric     string  `json:"metric"`
	Distance   float64 `json:"distance"`
	Similarity float64 `json:"similarity"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	maxLen := flag.Int("max-length", 60, "Edit distance engine capacity")
	cacheSize := flag.Int("cache-size", DefaultCacheSize, "Edit distance result cache capacity (0 = disabled)")
	warmUp := flag.Bool("warm-up", true, "Perform metric warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting pair metrics HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"max_length", *maxLen,
		"cache_size", *cacheSize,
	)

	initMetrics(*maxLen, *cacheSize, *warmUp)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        *readTimeout,
		WriteTimeout:       *writeTimeout,
		MaxRequestBodySize: *maxRequestSize,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initMetrics initializes the shared metric instances.
func initMetrics(maxLen, cacheSize int, warmUp bool) {
	var err error

	setComparator, err = set.NewComparator[string](set.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize set comparator", "error", err)
		os.Exit(1)
	}

	stringOpts := []stringsim.Option{stringsim.WithLogger(logger)}
	if warmUp {
		stringOpts = append(stringOpts, stringsim.WithWarmUp(true))
	}
	stringComparator, err = stringsim.NewComparator(stringOpts...)
	if err != nil {
		logger.Error("Failed to initialize string comparator", "error", err)
		os.Exit(1)
	}

	engineOpts := []stringsim.EngineOption{
		stringsim.WithEngineLogger(logger),
		stringsim.WithMaxLength(maxLen),
	}
	if cacheSize > 0 {
		engineOpts = append(engineOpts, stringsim.WithResultCache(cacheSize))
	}
	distanceEngine, err = stringsim.NewDistanceEngine(engineOpts...)
	if err != nil {
		logger.Error("Failed to initialize distance engine", "error", err)
		os.Exit(1)
	}

	bowComparator, err = bow.NewComparator(bow.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize bag-of-words comparator", "error", err)
		os.Exit(1)
	}

	logger.Info("Metric instances initialized successfully", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "PairMetricsServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/set/jaccard":
		handleJaccard(ctx)
	case "/set/tversky":
		handleTversky(ctx)
	case "/string/exact":
		handleExact(ctx)
	case "/string/jarowinkler":
		handleJaroWinkler(ctx)
	case "/string/editdistance":
		handleEditDistance(ctx)
	case "/bow/cosine":
		handleCosine(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests.
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// decodeSetRequest parses and validates a set metric request body.
func decodeSetRequest(ctx *fasthttp.RequestCtx) (*SetRequest, bool) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return nil, false
	}

	var req SetRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// handleJaccard handles Jaccard index requests.
func handleJaccard(ctx *fasthttp.RequestCtx) {
	req, ok := decodeSetRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := setComparator.Jaccard(c, set.New(req.A...), set.New(req.B...))
	writeResult(ctx, result)
}

// handleTversky handles Tversky index requests.
func handleTversky(ctx *fasthttp.RequestCtx) {
	req, ok := decodeSetRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var opts []set.TverskyOption
	if req.Alpha != nil {
		opts = append(opts, set.Alpha(*req.Alpha))
	}
	if req.Beta != nil {
		opts = append(opts, set.Beta(*req.Beta))
	}

	result := setComparator.Tversky(c, set.New(req.A...), set.New(req.B...), opts...)
	writeResult(ctx, result)
}

// decodeStringRequest parses and validates a string metric request body.
func decodeStringRequest(ctx *fasthttp.RequestCtx) (*StringRequest, bool) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return nil, false
	}

	var req StringRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// handleExact handles exact match requests.
func handleExact(ctx *fasthttp.RequestCtx) {
	req, ok := decodeStringRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := stringComparator.Exact(c, req.S1, req.S2)
	writeResult(ctx, result)
}

// handleJaroWinkler handles Jaro-Winkler requests.
func handleJaroWinkler(ctx *fasthttp.RequestCtx) {
	req, ok := decodeStringRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var opts []stringsim.JaroWinklerOption
	if req.ScalingFactor != nil {
		opts = append(opts, stringsim.ScalingFactor(*req.ScalingFactor))
	}
	if req.BoostThreshold != nil {
		opts = append(opts, stringsim.BoostThreshold(*req.BoostThreshold))
	}

	result := stringComparator.JaroWinkler(c, req.S1, req.S2, opts...)
	writeResult(ctx, result)
}

// handleEditDistance handles Damerau-Levenshtein requests.
func handleEditDistance(ctx *fasthttp.RequestCtx) {
	req, ok := decodeStringRequest(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := distanceEngine.Distance(c, req.S1, req.S2)
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		} else {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
		}
		writeJSONError(ctx, err.Error())
		return
	}
	writeResult(ctx, result)
}

// handleCosine handles bag-of-words cosine requests.
func handleCosine(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req VectorRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := bowComparator.Cosine(c, bow.Vector(req.A), bow.Vector(req.B))
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}
	writeResult(ctx, result)
}

// Helper functions

// writeResult writes a metric result to the context.
func writeResult(ctx *fasthttp.RequestCtx, result domain.Result) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, Response{
		Metric:     result.Name,
		Distance:   result.Distance,
		Similarity: result.Similarity,
	})
}

// writeJSONResponse writes a JSON response to the context.
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger.
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
