package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	apperrors "github.com/matzehuels/calgrid/pkg/errors"
	calio "github.com/matzehuels/calgrid/pkg/io"
	"github.com/matzehuels/calgrid/pkg/layout"
	"github.com/matzehuels/calgrid/pkg/observability"
	"github.com/matzehuels/calgrid/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

type errorResponse struct {
	Code  apperrors.Code `json:"code"`
	Error string         `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleIndex renders the configured input as an HTML page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Input == "" {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeNotFound, "no input configured"))
		return
	}
	opts := s.baseOptions()
	opts.Input = s.cfg.Input
	opts.Formats = []string{pipeline.FormatHTML}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, pipeline.FormatHTML, result.Artifacts[pipeline.FormatHTML])
}

// handleLayout decodes the body and returns the packed grid.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.bodyOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	events, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.runner.Layout(r.Context(), events, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := layout.MarshalGrid(g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, pipeline.FormatJSON, data)
}

// handleRender decodes the body and returns one artifact.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.bodyOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	output := q.Get("output")
	switch output {
	case "":
		output = pipeline.FormatHTML
	case "text":
		output = pipeline.FormatText
	}
	opts.Formats = []string{output}
	if v := q.Get("viz"); v != "" {
		opts.VizType = v
	}
	if t := q.Get("title"); t != "" {
		if err := apperrors.ValidateTitle(t); err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Title = t
	}
	if v := q.Get("weekends"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "weekends: %q is not a boolean", v))
			return
		}
		opts.Weekends = b
	}
	if e := q.Get("png_engine"); e != "" {
		opts.PNGEngine = e
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, output, result.Artifacts[output])
}

func (s *Server) baseOptions() pipeline.Options {
	return pipeline.Options{
		Title:     s.cfg.Title,
		Palette:   s.cfg.Palette,
		Weekends:  s.cfg.Weekends,
		MaxDays:   s.cfg.MaxDays,
		MaxEvents: s.cfg.MaxEvents,
		Logger:    s.logger,
	}
}

// bodyOptions reads the request body and picks its input format.
func (s *Server) bodyOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	opts := s.baseOptions()

	format := calio.FormatJSON
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := calio.ParseFormat(name)
		if err != nil {
			return opts, err
		}
		format = f
	} else if f, ok := calio.FormatFromContentType(r.Header.Get("Content-Type")); ok {
		format = f
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize))
	if err != nil {
		return opts, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read request body")
	}
	opts.Input = "request." + string(format)
	opts.Data = body
	opts.InputFormat = string(format)
	return opts, nil
}

func (s *Server) writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	status := apperrors.HTTPStatus(err)
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(errorResponse{Code: code, Error: apperrors.UserMessage(err)}); encErr != nil {
		s.logger.Error("failed to write JSON response", "error", encErr)
	}
}
