// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"log/slog"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/lifecycle"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// InitPipeline validates the wiring between the registries and config, then
// creates the pipeline manager that drives the lifecycle engine.
//
// ============================================================
// DEVELOPER: Configure rule-to-action mappings
// ============================================================
// The pipeline orchestrates the flow:
// Signals → Lifecycle (rules) → Actions
//
// Rule-to-action mappings are configured in config/pipeline.yaml:
//
// rules:
//   - id: hatch
//     type: hatch
//     actions: [evolution_sound, record_transition]
//
// When a rule triggers, the manager executes each mapped action in
// sequence. If a synchronous action fails, the ones before it are
// rolled back. The transition itself always stands.
// ============================================================
func InitPipeline(
	engine *lifecycle.Engine,
	ruleRegistry *rule.Registry,
	actionRegistry *action.Registry,
	actionExecutor *action.Executor,
	pipelineConfig *pipeline.Config,
	logger *slog.Logger,
	queueSize int,
) (*pipeline.Manager, error) {
	if err := pipeline.ValidateWiring(ruleRegistry, actionRegistry, pipelineConfig); err != nil {
		return nil, err
	}

	p := pipeline.FromConfig("companion", pipelineConfig)
	logrus.Infof("configured %d rule-to-action mappings", len(p.Actions))

	manager := pipeline.NewManager(engine, actionExecutor, p, logger, queueSize)
	logrus.Infof("initialized pipeline manager")

	return manager, nil
}
