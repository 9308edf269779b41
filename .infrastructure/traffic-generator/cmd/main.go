package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы к сервису бронирования по шагу сценария и статусу",
	}, []string{"action", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"action"})
)

type action struct {
	name   string
	method string
	path   string
	body   string
}

var cargoFields = []struct {
	path  string
	value string
}{
	{path: "cargo.description", value: `"10 boxes of electronics"`},
	{path: "cargo.type", value: `"general"`},
	{path: "cargo.weight", value: `50`},
	{path: "cargo.dimensions.length", value: `1`},
	{path: "cargo.dimensions.width", value: `1`},
	{path: "cargo.dimensions.height", value: `1`},
	{path: "cargo.value", value: `20000`},
}

// scenario заполняет первый шаг мастера бронирования, оценивает тариф и сбрасывает черновик
func scenario(profile string) []action {
	base := "/booking/" + profile

	actions := []action{{name: "get", method: http.MethodGet, path: base}}
	for _, f := range cargoFields {
		actions = append(actions, action{
			name:   "fields",
			method: http.MethodPatch,
			path:   base + "/fields",
			body:   fmt.Sprintf(`{"path":%q,"value":%s}`, f.path, f.value),
		})
	}

	return append(actions,
		action{name: "autosave", method: http.MethodPut, path: base + "/autosave", body: `{"enabled":true}`},
		action{name: "next", method: http.MethodPost, path: base + "/steps/next"},
		action{name: "fare", method: http.MethodGet, path: "/fare/estimate?from=Mumbai&to=Pune&weight=50"},
		action{name: "previous", method: http.MethodPost, path: base + "/steps/previous"},
		action{name: "discard", method: http.MethodDelete, path: base + "/draft"},
	)
}

func do(client *http.Client, baseURL string, a action) {
	req, err := http.NewRequest(a.method, baseURL+a.path, strings.NewReader(a.body))
	if err != nil {
		log.Printf("build request %s: %v", a.name, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(a.name).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(a.name, "transport_error").Inc()
		return
	}
	resp.Body.Close()
	requestsTotal.WithLabelValues(a.name, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("BOOKING_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	client := &http.Client{Timeout: 10 * time.Second}
	for {
		profile := fmt.Sprintf("load-%d", rand.Intn(50))
		for _, a := range scenario(profile) {
			do(client, baseURL, a)
			time.Sleep(time.Duration(100+rand.Intn(400)) * time.Millisecond)
		}
		time.Sleep(time.Second)
	}
}
