package builtin

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/metrics"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// RecordTransitionActionID is the action type that records a transition
const RecordTransitionActionID = "record_transition"

// RecordTransitionAction counts the transition and logs it.
type RecordTransitionAction struct {
	config action.ActionConfig
}

// NewRecordTransitionAction creates a new record transition action.
func NewRecordTransitionAction(config action.ActionConfig) *RecordTransitionAction {
	return &RecordTransitionAction{config: config}
}

func (a *RecordTransitionAction) ID() string {
	return a.config.ID
}

func (a *RecordTransitionAction) Name() string {
	return "Record Transition"
}

func (a *RecordTransitionAction) Config() action.ActionConfig {
	return a.config
}

func (a *RecordTransitionAction) Execute(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	metrics.TransitionsTotal.WithLabelValues(trigger.Transition.Kind).Inc()

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"rule":  trigger.RuleID,
		"kind":  trigger.Transition.Kind,
		"from":  trigger.Transition.From,
		"to":    trigger.Transition.To,
		"level": snap.Level,
	}).Infof("companion is now %s", snap.Name)

	return nil
}

// Rollback is not supported: Prometheus counters only go up.
func (a *RecordTransitionAction) Rollback(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	return action.ErrRollbackNotSupported
}
