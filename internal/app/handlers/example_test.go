package handlers

import (
	"fmt"
	"go-link-shortener/internal/app/keygen"
	"go-link-shortener/internal/app/registry"
	"go-link-shortener/internal/app/service"
	"net/http"
	"net/http/httptest"
	"strings"
)

func ExampleHTTPHandler_HandlerPOST() {
	reg := registry.New(registry.WithGenerator(keygen.NewSequence(42)))
	router := NewRouter(NewHTTPHandler(service.NewService(reg, nil, "http://localhost:8080")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("https://duck.com")))
	fmt.Println(w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/42", nil))
	fmt.Println(w.Code, w.Header().Get("Location"))

	// Output:
	// 201 42
	// 307 https://duck.com
}

func ExampleHTTPHandler_HandlerJSONPOST() {
	reg := registry.New(registry.WithGenerator(keygen.NewSequence(7)))
	router := NewRouter(NewHTTPHandler(service.NewService(reg, nil, "http://localhost:8080")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"https://duck.com"}`)))
	fmt.Print(w.Body.String())

	// Output:
	// {"result":"7","short_url":"http://localhost:8080/7"}
}
