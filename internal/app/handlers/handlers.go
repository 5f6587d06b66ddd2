package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"go-link-shortener/internal/app/middleware"
	"go-link-shortener/internal/app/registry"
	"go-link-shortener/internal/app/service"
	"go-link-shortener/internal/app/types"
	"go-link-shortener/internal/app/utils"
	"go-link-shortener/internal/configs"
	"io"
	"log"
	"net/http"
)

// HTTPHandler contains service for current registry.
type HTTPHandler struct {
	service *service.Service
}

// NewHTTPHandler returns a new HTTPHandler for the service.
func NewHTTPHandler(svc *service.Service) *HTTPHandler {
	return &HTTPHandler{service: svc}
}

// NewRouter returns chi router with all shortener routes.
func NewRouter(h *HTTPHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLog)

	// routing
	r.Get("/", h.HandlerIndex)
	r.Post("/", h.HandlerPOST)
	r.Get("/ping", h.HandlerPing)
	r.Get("/{ID}", h.HandlerGET)
	r.Post("/api/shorten", h.HandlerJSONPOST)
	r.Post("/api/shorten/batch", h.HandlerBatchPOST)
	r.Get("/api/internal/stats", h.HandlerStats)

	return r
}

// shortenError maps a Shorten error to a status code.
func shortenError(w http.ResponseWriter, err error) {
	if errors.Is(err, registry.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	buf := bytes.NewBuffer([]byte{})
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("Encoded JSON: %s", buf.String())

	w.Header().Set(configs.ContentType, configs.ContentValueJSON)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Write response: %v", err)
	}
}

func (h *HTTPHandler) HandlerIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(configs.ContentType, configs.ContentValue)
	if _, err := w.Write([]byte("Hello, world!")); err != nil {
		log.Printf("Write response: %v", err)
	}
}

// HandlerPOST shortens the url from the request body and returns the decimal key.
func (h *HTTPHandler) HandlerPOST(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("Long URL: %v", string(body))

	key, err := h.service.Shorten(string(body))
	if err != nil {
		shortenError(w, err)
		return
	}
	log.Printf("Short key: %d", key)

	w.Header().Set(configs.ContentType, configs.ContentValue)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write([]byte(utils.FormatKey(key))); err != nil {
		log.Printf("Write response: %v", err)
	}
}

// HandlerJSONPOST shortens {"url": ...} and returns the key and the short url.
func (h *HTTPHandler) HandlerJSONPOST(w http.ResponseWriter, r *http.Request) {
	var request types.RequestJSON
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("Request JSON: %+v", request)

	key, err := h.service.Shorten(request.URL)
	if err != nil {
		shortenError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.ResponseJSON{
		Result:   utils.FormatKey(key),
		ShortURL: h.service.ShortURL(key),
	})
}

func (h *HTTPHandler) HandlerBatchPOST(w http.ResponseWriter, r *http.Request) {
	var request types.RequestBatch
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("Request batch JSON: %+v", request)

	response, err := h.service.ShortenBatch(r.Context(), request)
	if err != nil {
		shortenError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

// HandlerGET redirects to the url stored under the key.
func (h *HTTPHandler) HandlerGET(w http.ResponseWriter, r *http.Request) {
	strID := chi.URLParam(r, "ID")
	log.Printf("strID: `%s`", strID)
	key, err := utils.ParseKey(strID)
	if err != nil {
		http.Error(w, "Invalid key", http.StatusBadRequest)
		return
	}

	originalURL, err := h.service.Resolve(key)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("Original URL: %s", originalURL)
	w.Header().Set(configs.ContentType, configs.ContentValue)
	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}

func (h *HTTPHandler) HandlerStats(w http.ResponseWriter, r *http.Request) {
	userIP, err := utils.ResolveIP(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	stats, err := h.service.GetInternalStats(userIP)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *HTTPHandler) HandlerPing(w http.ResponseWriter, r *http.Request) {
	if !h.service.Ping() {
		http.Error(w, "registry is not available", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
