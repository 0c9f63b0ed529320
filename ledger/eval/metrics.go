// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package eval

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/edcchain/evalcore/data/basics"
)

const metricNamespace = "evalcore"

var (
	operationsEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "operations_evaluated_total",
		Help:      "operations whose do_evaluate succeeded",
	})
	operationsApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "operations_applied_total",
		Help:      "operations whose do_apply succeeded",
	})
	feeBurnt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "fee_burnt_total",
		Help:      "fee amount burnt per asset, post-HF623",
	}, []string{"asset_id"})
	feePaid = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "fee_paid_core_total",
		Help:      "core-denominated fee amount paid via pay_fee",
	})
)

func init() {
	prometheus.MustRegister(operationsEvaluated, operationsApplied, feeBurnt, feePaid)
}

func recordEvaluated() { operationsEvaluated.Inc() }
func recordApplied()   { operationsApplied.Inc() }

func recordFeeBurnt(asset basics.AssetID, amount basics.Share) {
	if amount <= 0 {
		return
	}
	feeBurnt.WithLabelValues(strconv.FormatUint(uint64(asset), 10)).Add(float64(amount))
}

func recordFeePaid(amount basics.Share) {
	if amount <= 0 {
		return
	}
	feePaid.Add(float64(amount))
}
