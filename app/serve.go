package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"unicode/utf8"

	"lightblue/nlp/format/deriv"
	"lightblue/nlp/parser/chart"
	"lightblue/util/conf"

	"github.com/gonuts/commander"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

var serveAddr string

type parseRequest struct {
	Sentence string `json:"sentence"`
	Beam     int    `json:"beam,omitempty"`
}

type parseResponse struct {
	ID          string       `json:"id"`
	Sentence    string       `json:"sentence"`
	Outcome     string       `json:"outcome"`
	Derivations []deriv.View `json:"derivations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes a parser over HTTP.
//
//	GET  /api/parse?s=<sentence>[&beam=N]
//	POST /api/parse   body: {"sentence":"...","beam":N}
type Server struct {
	Parser *chart.Parser
	Beam   int
	Limits conf.Serve
}

func NewServer(parser *chart.Parser, c *conf.Conf) *Server {
	return &Server{Parser: parser, Beam: c.Beam, Limits: c.Serve}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	switch r.Method {
	case http.MethodGet:
		req.Sentence = r.URL.Query().Get("s")
		if b := r.URL.Query().Get("beam"); b != "" {
			beam, err := strconv.Atoi(b)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid 'beam' query parameter")
				return
			}
			req.Beam = beam
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	default:
		writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
		return
	}
	if req.Sentence == "" {
		writeError(w, http.StatusBadRequest, "missing sentence")
		return
	}
	if n := utf8.RuneCountInString(req.Sentence); n > s.Limits.MaxSentence {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("sentence has %d characters, limit is %d", n, s.Limits.MaxSentence))
		return
	}
	if req.Beam < 0 || req.Beam > s.Limits.MaxBeam {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("beam must be between 1 and %d", s.Limits.MaxBeam))
		return
	}
	if req.Beam == 0 {
		req.Beam = s.Beam
	}

	result := chart.ExtractParseResult(req.Beam, s.Parser.Parse(req.Beam, req.Sentence))
	resp := parseResponse{
		ID:          uuid.New().String(),
		Sentence:    req.Sentence,
		Outcome:     result.Outcome.String(),
		Derivations: make([]deriv.View, len(result.Nodes)),
	}
	for k, n := range result.Nodes {
		resp.Derivations[k] = deriv.ToView(n)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Handler returns the API routes wrapped in a permissive CORS policy.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", s.handleParse)
	return cors.Default().Handler(mux)
}

func Serve(cmd *commander.Command, args []string) error {
	c, err := LoadConf()
	if err != nil {
		return err
	}
	ConfigOut(c)
	parser, err := SetupParser(c)
	if err != nil {
		return err
	}
	server := NewServer(parser, c)
	log.Printf("Listening on %s", serveAddr)
	return http.ListenAndServe(serveAddr, server.Handler())
}

func ServeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Serve,
		UsageLine: "serve [options]",
		Short:     "serve the parser as a JSON API",
		Long: `
serve the parser as a JSON API

	$ ./lightblue serve [-addr :8080] [-conf <yaml>]

	GET  /api/parse?s=<sentence>[&beam=N]
	POST /api/parse   body: {"sentence":"...","beam":N}

`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	addConfFlags(cmd)
	cmd.Flag.StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	return cmd
}
