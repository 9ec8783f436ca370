// SPDX-License-Identifier: MIT

package service_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/preset"
	"github.com/katalvlaran/lvdata/service"
)

func do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](rec *httptest.ResponseRecorder) T {
	var v T
	Expect(json.Unmarshal(rec.Body.Bytes(), &v)).To(Succeed())
	return v
}

var _ = Describe("Server", func() {
	var (
		srv *service.Server
		reg *prometheus.Registry
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		cfg := service.DefaultConfig()
		cfg.GenerateTimeout = time.Second
		cfg.Presets = preset.Catalog{
			"tiny": {Count: 5, Min: 1, Max: 20, ModeCount: 1},
		}
		srv = service.New(cfg, logr.Discard(), reg)
	})

	Context("POST /v1/generate", func() {
		It("returns a sorted dataset with statistics", func() {
			seed := int64(42)
			rec := do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{
				Count: 9, Min: 1, Max: 40, ModeCount: 1, Seed: &seed,
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("X-Request-ID")).NotTo(BeEmpty())

			resp := decode[service.DatasetResponse](rec)
			Expect(resp.Values).To(HaveLen(9))
			Expect(resp.Stats.Count).To(Equal(9))
			Expect(resp.Stats.Mode).To(HaveLen(1))
			Expect(resp.Stats.Median).NotTo(BeNil())
			Expect(resp.Values).To(Equal(dataset.New(resp.Values).Values()))
		})

		It("is deterministic for a fixed seed", func() {
			seed := int64(7)
			req := service.GenerateRequest{Count: 10, Min: 1, Max: 50, Seed: &seed}
			a := decode[service.DatasetResponse](do(srv, http.MethodPost, "/v1/generate", req))
			b := decode[service.DatasetResponse](do(srv, http.MethodPost, "/v1/generate", req))
			Expect(a.Values).To(Equal(b.Values))
			Expect(a.ID).NotTo(Equal(b.ID))
		})

		It("resolves presets", func() {
			rec := do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{Preset: "tiny"})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode[service.DatasetResponse](rec).Stats.Mode).To(HaveLen(1))
		})

		It("reports unknown presets as 404", func() {
			rec := do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{Preset: "nope"})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("unknown_preset"))
		})

		It("rejects invalid configurations with 400", func() {
			rec := do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{Count: 0, Min: 1, Max: 5})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("invalid_configuration"))

			rec = do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{Count: 3, Min: 1, Max: 5, ModeCount: -1})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("reports unsatisfiable constraints with 422", func() {
			rec := do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{
				Count: 10, Min: 1, Max: 5, Unique: true,
			})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("unsatisfiable"))
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP lvdata_generations_total Dataset generations by outcome.
# TYPE lvdata_generations_total counter
lvdata_generations_total{outcome="unsatisfiable"} 1
`), "lvdata_generations_total")).To(Succeed())
		})

		It("rejects bad JSON and wrong methods", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader("{"))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			Expect(do(srv, http.MethodGet, "/v1/generate", nil).Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Context("POST /v1/stats", func() {
		It("computes statistics for literal values", func() {
			rec := do(srv, http.MethodPost, "/v1/stats", service.StatsRequest{
				Values: []int{9, 1, 3, 8, 3, 7, 6},
				Probe:  []int{3},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			resp := decode[service.DatasetResponse](rec)
			Expect(resp.Values).To(Equal([]int{1, 3, 3, 6, 7, 8, 9}))
			Expect(*resp.Stats.Median).To(Equal(6.0))
			Expect(*resp.Stats.FirstQuartile).To(Equal(3.0))
			Expect(*resp.Stats.ThirdQuartile).To(Equal(8.0))
			Expect(resp.Stats.Mode).To(Equal([]int{3}))
			Expect(resp.Matches).NotTo(BeNil())
			Expect(*resp.Matches).To(Equal(2))
		})

		It("serialises no match as null", func() {
			rec := do(srv, http.MethodPost, "/v1/stats", service.StatsRequest{Values: []int{1, 2, 3}, Probe: []int{5}})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"matches":null`))
		})

		It("leaves quartiles of a single value undefined", func() {
			resp := decode[service.DatasetResponse](do(srv, http.MethodPost, "/v1/stats", service.StatsRequest{Values: []int{4}}))
			Expect(resp.Stats.FirstQuartile).To(BeNil())
			Expect(*resp.Stats.Median).To(Equal(4.0))
		})

		It("rejects empty datasets", func() {
			rec := do(srv, http.MethodPost, "/v1/stats", service.StatsRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("empty_dataset"))
		})
	})

	Context("request limits", func() {
		var small *service.Server

		BeforeEach(func() {
			cfg := service.DefaultConfig()
			cfg.MaxValueCount = 10
			cfg.Presets = preset.Catalog{
				"negative": {Count: 5, Min: 1, Max: 20, ModeCount: -2},
			}
			small = service.New(cfg, logr.Discard(), prometheus.NewRegistry())
		})

		It("rejects oversized bodies with 413", func() {
			values := make([]int, 5000)
			for i := range values {
				values[i] = 1_000_000 + i
			}
			rec := do(small, http.MethodPost, "/v1/stats", service.StatsRequest{Values: values})
			Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("request_too_large"))

			rec = do(small, http.MethodPost, "/v1/generate", service.GenerateRequest{
				Count: 5, Min: 1, Max: 9, Probe: values,
			})
			Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
		})

		It("rejects value lists above the count limit", func() {
			rec := do(small, http.MethodPost, "/v1/stats", service.StatsRequest{
				Values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("invalid_request"))

			rec = do(small, http.MethodPost, "/v1/generate", service.GenerateRequest{Count: 11, Min: 1, Max: 50})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects presets with a negative mode count", func() {
			rec := do(small, http.MethodPost, "/v1/generate", service.GenerateRequest{Preset: "negative"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[service.ErrorResponse](rec).Code).To(Equal("invalid_configuration"))
		})
	})

	Context("operational endpoints", func() {
		It("echoes the caller's request ID", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("X-Request-ID", "abc-123")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			Expect(rec.Header().Get("X-Request-ID")).To(Equal("abc-123"))
		})

		It("serves health and metrics", func() {
			Expect(do(srv, http.MethodGet, "/healthz", nil).Code).To(Equal(http.StatusOK))

			seed := int64(1)
			do(srv, http.MethodPost, "/v1/generate", service.GenerateRequest{Count: 4, Min: 1, Max: 9, Seed: &seed})

			rec := do(srv, http.MethodGet, "/metrics", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`lvdata_generations_total{outcome="accepted"} 1`))
		})
	})
})
