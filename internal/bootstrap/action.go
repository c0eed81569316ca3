// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	actionBuiltin "github.com/AccelByte/extend-step-companion/pkg/action/builtin"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
)

// InitActionExecutor creates and initializes an action executor with actions from pipeline config.
//
// ============================================================
// DEVELOPER: Register custom action types here.
// ============================================================
// Actions are the one-time side effects of a transition.
//
// Steps to add a new action:
// 1. Create your action in pkg/action/builtin/
// 2. Implement the Action interface
// 3. Register the action type in pkg/action/builtin/init.go
// 4. Add action configuration to config/pipeline.yaml
// 5. Map it to rules in config/pipeline.yaml
//
// The builtin actions:
// - play_cue → sends an audio cue to the speaker
// - record_transition → counts and logs the transition
//
// Actions that need external collaborators (e.g. the audio
// player) receive them through the Dependencies struct.
// ============================================================
func InitActionExecutor(
	pipelineConfig *pipeline.Config,
	deps *actionBuiltin.Dependencies,
) (*action.Executor, *action.Registry, error) {
	actionBuiltin.RegisterActions(deps)

	if err := pipeline.ValidateTypes(&pipeline.Config{Actions: pipelineConfig.Actions}); err != nil {
		return nil, nil, err
	}

	registry := action.NewRegistry()
	if err := action.RegisterActions(registry, pipelineConfig.ActionConfigs()); err != nil {
		return nil, nil, fmt.Errorf("failed to register actions: %w", err)
	}

	executor := action.NewExecutor(registry)
	logrus.Infof("initialized action executor with %d actions", registry.Count())

	return executor, registry, nil
}
