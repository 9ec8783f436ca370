// SPDX-License-Identifier: MIT

// Package service exposes dataset generation and statistics over HTTP/JSON.
//
// Endpoints:
//
//	POST /v1/generate  {count,min,max,mode_count,unique,allow_prime,from_factor,seed,preset,probe}
//	POST /v1/stats     {values,probe}
//	GET  /healthz
//	GET  /metrics      (Prometheus text format)
//
// Every generation runs under a wall-clock budget (Config.GenerateTimeout);
// a request that cannot be satisfied in time gets 504, a provably impossible
// one gets 422. "matches" is null when no value matched the probe.
package service
