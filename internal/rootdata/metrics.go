// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rootdata

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeTransport = "transport_error"
	outcomeUpstream  = "upstream_error"
	outcomeOther     = "error"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rootdata_upstream_requests_total",
			Help: "Total number of RootData API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rootdata_upstream_request_duration_seconds",
			Help:    "Duration of RootData API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func observe(ep Endpoint, start time.Time, err error) {
	upstreamDuration.WithLabelValues(string(ep)).Observe(time.Since(start).Seconds())
	upstreamRequests.WithLabelValues(string(ep), outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		te *TransportError
		ue *UpstreamError
	)
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &te):
		return outcomeTransport
	case errors.As(err, &ue):
		return outcomeUpstream
	default:
		return outcomeOther
	}
}
