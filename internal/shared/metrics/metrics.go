// Package metrics declares the prometheus collectors of the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_events_processed",
	Help: "Number of platform events processed",
}, []string{"type"})

var EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_events_dropped",
	Help: "Number of events dropped because the pool was stopped",
}, []string{"type"})

var EventPanics = promauto.NewCounter(prometheus.CounterOpts{
	Name: "groupguard_event_panics",
	Help: "Number of event tasks that panicked",
})

var LockDispositions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_lock_dispositions",
	Help: "Lock evaluation outcomes by disposition and matched category",
}, []string{"disposition", "category"})

var ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_moderation_actions",
	Help: "Moderation actions by type and outcome",
}, []string{"action", "outcome"})

var CommandErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_command_errors",
	Help: "Failed commands by command and error kind",
}, []string{"command", "kind"})

var AdminListFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groupguard_admin_list_fetches",
	Help: "Administrator list refreshes by outcome",
}, []string{"outcome"})

var PlatformCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "groupguard_platform_call_duration_sec",
	Help: "Duration of calls into the chat platform",
}, []string{"method"})
