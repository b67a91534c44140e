// Package httpapi exposes the core as a single JSON endpoint: POST
// /exact-decimal takes a decimal string and a digit count and returns
// the exact binary64 decomposition plus its d-digit pre-images.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/db47h/fpexact/fp"
)

const (
	minDigits = 1
	maxDigits = 50
)

// errorResponse is the fixed shape of every 400 response (spec §6).
type errorResponse struct {
	Error string `json:"error"`
}

// exactDecimalResponse is the fixed shape of a successful response
// (spec §6). Numeric fields that need arbitrary precision are
// serialised as strings.
type exactDecimalResponse struct {
	Input          string   `json:"input"`
	Digits         int      `json:"digits"`
	FP             float64  `json:"fp"`
	Bits           string   `json:"bits"`
	ExactDecimal   string   `json:"exact_decimal"`
	UnbiasedExp    int      `json:"unbiased_exp"`
	DDigitCount    int      `json:"d_digit_count"`
	DDigitDistance string   `json:"d_digit_distance"`
	DDigitList     []string `json:"d_digit_list"`
}

// Server serves the exact-decimal endpoint. The zero value is not
// ready to use; construct with NewServer.
type Server struct {
	log *slog.Logger
}

// NewServer builds a Server. If log is nil, slog.Default() is used.
func NewServer(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log}
}

// Handler returns the http.Handler serving the endpoints this package
// owns. Callers mount it wherever they like (spec §1: the echo
// endpoint and HTML templating around it are out of scope).
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/exact-decimal", s.handleExactDecimal)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// handleExactDecimal implements the POST /exact-decimal contract of
// spec §6 field-for-field, including its four fixed error messages.
func (s *Server) handleExactDecimal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, "Invalid decimal number or number of digits. Please enter valid numbers.")
		return
	}

	decimalInput := strings.TrimSpace(r.FormValue("decimal"))
	digitsInput := strings.TrimSpace(r.FormValue("digits"))

	if decimalInput == "" {
		writeError(w, "Please enter a decimal number")
		return
	}
	if digitsInput == "" {
		writeError(w, "Please enter the number of digits")
		return
	}

	value, err := strconv.ParseFloat(decimalInput, 64)
	if err != nil {
		writeError(w, "Invalid decimal number or number of digits. Please enter valid numbers.")
		return
	}
	digits, err := strconv.Atoi(digitsInput)
	if err != nil {
		writeError(w, "Invalid decimal number or number of digits. Please enter valid numbers.")
		return
	}
	if digits < minDigits || digits > maxDigits {
		writeError(w, "Number of digits must be between 1 and 50")
		return
	}

	ctx := fp.NewContext()
	record, err := fp.FromDouble(ctx, value)
	if err != nil {
		s.log.Warn("from_double failed", "input", decimalInput, "error", err)
		writeError(w, "Invalid decimal number or number of digits. Please enter valid numbers.")
		return
	}

	count, distance, numbers, err := fp.GetDDigitDecimals(ctx, record, digits)
	if err != nil {
		s.log.Warn("get_d_digit_decimals failed", "input", decimalInput, "digits", digits, "error", err)
		writeError(w, "Invalid decimal number or number of digits. Please enter valid numbers.")
		return
	}

	writeJSON(w, http.StatusOK, exactDecimalResponse{
		Input:          decimalInput,
		Digits:         digits,
		FP:             record.Value,
		Bits:           record.Bits,
		ExactDecimal:   record.ExactDecimal.Text('f', -1),
		UnbiasedExp:    record.UnbiasedExp,
		DDigitCount:    count,
		DDigitDistance: distance.Text('f', -1),
		DDigitList:     numbers,
	})
}
