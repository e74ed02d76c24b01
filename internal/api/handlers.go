package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/pchuan98/livecharts/pkg/buildinfo"
	"github.com/pchuan98/livecharts/pkg/errors"
	"github.com/pchuan98/livecharts/pkg/pipeline"
	"github.com/pchuan98/livecharts/pkg/render"
	"github.com/pchuan98/livecharts/pkg/source"
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type measureResponse struct {
	DefinitionHash string        `json:"definition_hash"`
	CacheHit       bool          `json:"cache_hit"`
	Layout         render.Layout `json:"layout"`
}

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.MeasureLayout(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, measureResponse{
		DefinitionHash: res.DefinitionHash,
		CacheHit:       res.CacheInfo.LayoutHit,
		Layout:         res.Layout,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := errors.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.options(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("ETag", strconv.Quote(res.DefinitionHash))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// options reads the definition body and the sampling query parameters.
func (s *Server) options(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options

	format, err := definitionFormat(r.Header.Get("Content-Type"))
	if err != nil {
		return opts, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return opts, errors.Wrap(errors.ErrCodeTooLarge, err, "definition exceeds %d bytes", tooLarge.Limit)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read definition")
	}
	if len(body) == 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}
	opts.Definition = body
	opts.DefinitionFormat = format

	q := r.URL.Query()
	if v := q.Get("at"); v != "" {
		at, err := time.ParseDuration(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "at")
		}
		opts.At = &at
	}
	for name, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height} {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", name)
			}
			*dst = f
		}
	}
	opts.Locale = q.Get("locale")
	opts.Refresh = q.Get("refresh") == "true"
	opts.Logger = s.logger.With("request_id", RequestIDFrom(r.Context()))
	return opts, nil
}

// definitionFormat picks the definition format from a Content-Type.
// A missing header means JSON.
func definitionFormat(contentType string) (source.Format, error) {
	if contentType == "" {
		return source.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "content type")
	}
	switch mt {
	case "application/json":
		return source.FormatJSON, nil
	case "application/toml":
		return source.FormatTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return source.FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported content type %q", mt)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCodeOr(err, errors.ErrCodeInternal)
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestIDFrom(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:      code,
		Message:   msg,
		RequestID: RequestIDFrom(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
