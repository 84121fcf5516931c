// Package trace implements fleet.Trace. LogrusSink replaces a live
// websocket/termcolor dashboard with structured log lines; RecordingSink
// accumulates records in memory for test assertions, in the same
// accumulator shape as a typical SimulationTrace.
package trace

import (
	"github.com/sirupsen/logrus"

	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// LogrusSink logs every observable event at Debug level (movement, loading,
// plan/assignment churn), Info level (service suspend/resume, job success)
// or Warn level (job failure), through a caller-supplied
// logger so cmd/*.go can route it to the same logger it configures for
// everything else.
type LogrusSink struct {
	Log *logrus.Logger
}

// NewLogrusSink wraps log; if log is nil, logrus.StandardLogger() is used.
func NewLogrusSink(log *logrus.Logger) *LogrusSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogrusSink{Log: log}
}

func (s *LogrusSink) CartPlanIs(cart *fleet.Cart, unfiltered, filtered []fleet.Job) {
	s.Log.WithFields(logrus.Fields{
		"cart": cart.ID, "proposed": len(unfiltered), "kept": len(filtered),
	}).Debug("cart plan computed")
}

func (s *LogrusSink) CartArrives(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).WithField("location", cart.LastKnownLocation).Debug("cart arrives")
}

func (s *LogrusSink) CartPasses(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).WithField("location", cart.LastKnownLocation).Debug("cart passes")
}

func (s *LogrusSink) CartDeparts(cart *fleet.Cart, destination fleet.LocationId) {
	s.Log.WithField("cart", cart.ID).WithField("destination", destination).Debug("cart departs")
}

func (s *LogrusSink) CartWaits(cart *fleet.Cart, until simtime.SimTime) {
	s.Log.WithField("cart", cart.ID).WithField("until", int64(until)).Debug("cart waits")
}

func (s *LogrusSink) CartBeginsLoading(cart *fleet.Cart, quantity int) {
	s.Log.WithField("cart", cart.ID).WithField("quantity", quantity).Debug("cart begins loading")
}

func (s *LogrusSink) CartFinishesLoading(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).WithField("payload", cart.Payload).Debug("cart finishes loading")
}

func (s *LogrusSink) CartBeginsUnloading(cart *fleet.Cart, quantity int) {
	s.Log.WithField("cart", cart.ID).WithField("quantity", quantity).Debug("cart begins unloading")
}

func (s *LogrusSink) CartFinishesUnloading(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).WithField("payload", cart.Payload).Debug("cart finishes unloading")
}

func (s *LogrusSink) CartSuspendsService(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).Info("cart suspends service")
}

func (s *LogrusSink) CartResumesService(cart *fleet.Cart) {
	s.Log.WithField("cart", cart.ID).Info("cart resumes service")
}

func (s *LogrusSink) JobIntroduced(job fleet.Job) {
	s.Log.WithField("job", job.ID()).Debug("job introduced")
}

func (s *LogrusSink) JobAssigned(job fleet.Job) {
	cart, _ := job.AssignedTo()
	s.Log.WithField("job", job.ID()).WithField("cart", cart).Debug("job assigned")
}

func (s *LogrusSink) JobSucceeded(job fleet.Job) {
	s.Log.WithField("job", job.ID()).Info("job succeeded")
}

func (s *LogrusSink) JobFailed(job fleet.Job) {
	s.Log.WithField("job", job.ID()).Warn("job failed")
}

func (s *LogrusSink) PlannerStarted() {
	s.Log.Debug("planner started")
}

func (s *LogrusSink) PlannerFinished() {
	s.Log.Debug("planner finished")
}
