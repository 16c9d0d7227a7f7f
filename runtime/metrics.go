// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/caspereye/stakingtracker/metrics"

var (
	metricCallCount    = metrics.LazyLoadCounterVec("call_count", []string{"method", "outcome"})
	metricCallGas      = metrics.LazyLoadHistogramVec("call_gas", []string{"method"}, metrics.BucketCallGas)
	metricCallDuration = metrics.LazyLoadHistogram("call_duration_ms", metrics.BucketHTTPReqs)
	metricSnapshot     = metrics.LazyLoadGaugeVec("snapshot", []string{"field"})
)
