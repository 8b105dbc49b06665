// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"github.com/DmitriyVTitov/size"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dadrus/prefixtree/internal/keyset"
)

const (
	namespace = "prefixtree"

	resultSuccess = "success"
	resultFailure = "failure"
)

type metrics struct {
	reloads          *prometheus.CounterVec
	nodes            prometheus.Gauge
	values           prometheus.Gauge
	maxWildcardDepth prometheus.Gauge
	sizeBytes        prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Number of key set reloads, partitioned by result.",
		}, []string{"result"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Number of nodes in the active tree.",
		}),
		values: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "values",
			Help:      "Number of values stored in the active tree.",
		}),
		maxWildcardDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_wildcard_depth",
			Help:      "Maximum number of wildcards on a single key of the active tree.",
		}),
		sizeBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "size_bytes",
			Help:      "Approximate memory footprint of the active tree.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		m.reloads, m.nodes, m.values, m.maxWildcardDepth, m.sizeBytes,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	// make both series visible before the first failure
	m.reloads.WithLabelValues(resultSuccess)
	m.reloads.WithLabelValues(resultFailure)

	return m, nil
}

func (m *metrics) observe(tree *keyset.Tree) {
	m.reloads.WithLabelValues(resultSuccess).Inc()
	m.nodes.Set(float64(tree.NodeCount()))
	m.values.Set(float64(tree.Len()))
	m.maxWildcardDepth.Set(float64(tree.MaxWildcardDepth()))
	m.sizeBytes.Set(float64(size.Of(tree)))
}

func (m *metrics) failed() {
	m.reloads.WithLabelValues(resultFailure).Inc()
}
