// Package server exposes the dashboard view model over HTTP as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"diistore/internal/components/assert"
	"diistore/internal/components/telemetry"
	"diistore/internal/dashboard"
	"diistore/lib/serviceutil"

	"github.com/google/uuid"
)

const (
	report_server_encode = "server.encode"
	report_server_qr     = "server.qr"
)

type Options struct {
	Dashboard *dashboard.Dashboard
	Payment   dashboard.PaymentConfig
	// AccessToken guards the stock refresh endpoint when set.
	AccessToken string
	Telemetry   telemetry.API
}

type Server struct {
	dashboard   *dashboard.Dashboard
	payment     dashboard.PaymentConfig
	accessToken string
	tel         telemetry.API
}

func New(opts Options) Server {
	assert.NotNil(opts.Dashboard, "Dashboard")

	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}

	tel = telemetry.NewScopedAPI("server", tel)

	payment := opts.Payment.Normalize()
	if opts.Payment.QRUrl != "" && payment.QRUrl != opts.Payment.QRUrl {
		tel.ReportWarning(report_server_qr, "qr_url cannot be routed, using default", opts.Payment.QRUrl, payment.QRUrl)
	}

	return Server{
		dashboard:   opts.Dashboard,
		payment:     payment,
		accessToken: opts.AccessToken,
		tel:         tel,
	}
}

// Handler routes every endpoint of the dashboard API.
func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dashboard", s.getDashboard)
	mux.HandleFunc("GET /api/tabs", s.listTabs)
	mux.HandleFunc("GET /api/tabs/{tab}", s.getTab)
	mux.Handle("POST /api/stock/refresh", serviceutil.RequireAccessToken(
		s.accessToken,
		http.HandlerFunc(s.refreshStock),
	))
	mux.HandleFunc("GET /api/area", s.getArea)
	mux.HandleFunc(fmt.Sprintf("GET %s", s.payment.QRUrl), s.getQR)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	return s.logRequests(mux)
}

func (s Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestId)
		s.tel.ReportDebug("request", requestId, r.Method, r.URL.String())
		next.ServeHTTP(w, r)
	})
}

type tabsResponse struct {
	Default dashboard.Tab       `json:"default"`
	Tabs    []dashboard.TabInfo `json:"tabs"`
}

func (s Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, http.StatusOK, s.dashboard.Snapshot())
}

func (s Server) listTabs(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, http.StatusOK, tabsResponse{
		Default: dashboard.DefaultTab,
		Tabs:    dashboard.Tabs,
	})
}

func (s Server) getTab(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("tab")
	tab, ok := dashboard.ParseTab(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("unknown tab %q", key))
		return
	}
	view, _ := s.dashboard.Snapshot().View(tab)
	s.writeJson(w, http.StatusOK, view)
}

// the refresh outlives the request, its result shows up in later snapshots.
func (s Server) refreshStock(w http.ResponseWriter, r *http.Request) {
	s.dashboard.RefreshStock(context.WithoutCancel(r.Context()))
	s.writeJson(w, http.StatusAccepted, s.dashboard.Snapshot().Stock)
}

func (s Server) getArea(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, http.StatusOK, s.dashboard.AreaViewFor(r.URL.Query().Get("q")))
}

func (s Server) getQR(w http.ResponseWriter, r *http.Request) {
	if s.payment.QRFile == "" {
		s.writeError(w, http.StatusNotFound, errors.New("payment qr is not configured"))
		return
	}

	f, err := os.Open(s.payment.QRFile)
	if err != nil {
		s.tel.ReportBroken(report_server_qr, err, s.payment.QRFile)
		s.writeError(w, http.StatusNotFound, errors.New("payment qr is unavailable"))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.tel.ReportBroken(report_server_qr, err, s.payment.QRFile)
		s.writeError(w, http.StatusInternalServerError, errors.New("payment qr is unavailable"))
		return
	}

	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", s.payment.QRDownloadName),
	)
	http.ServeContent(w, r, s.payment.QRDownloadName, info.ModTime(), f)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJson(w, status, errorResponse{Error: err.Error()})
}

func (s Server) writeJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		s.tel.ReportBroken(report_server_encode, err)
	}
}
