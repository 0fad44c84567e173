// Package metrics defines and registers the custom Prometheus metrics of the
// questionnaire service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "questionnaire"

// ── Users ─────────────────────────────────────────────────────────────────────

// UsersCreatedTotal counts accounts created by the user factory.
// Label:
//   - kind: "user" or "superuser"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Answers & reports ─────────────────────────────────────────────────────────

// AnswersRecordedTotal counts persisted answers.
var AnswersRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "answers_recorded_total",
		Help:      "Total number of answers recorded.",
	},
)

// ReportAnswersTotal counts AddAnswer calls on reports.
// Label:
//   - result: "added" (new member) or "duplicate" (already in the set)
var ReportAnswersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_answers_total",
		Help:      "Total number of answers attached to reports, by result.",
	},
	[]string{"result"},
)

// ── Cache ─────────────────────────────────────────────────────────────────────

// QuestionCacheTotal counts question cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var QuestionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "question_cache_total",
		Help:      "Total number of question cache lookups, by result.",
	},
	[]string{"result"},
)
