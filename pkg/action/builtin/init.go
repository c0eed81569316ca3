package builtin

import (
	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/service"
)

// Dependencies holds dependencies needed by built-in actions.
type Dependencies struct {
	AudioPlayer service.AudioPlayer
}

// RegisterActions registers built-in action factories with dependencies.
func RegisterActions(deps *Dependencies) {
	var player service.AudioPlayer
	if deps != nil {
		player = deps.AudioPlayer
	}

	action.RegisterActionType(PlayCueActionID, func(config action.ActionConfig) (action.Action, error) {
		return NewPlayCueAction(config, player)
	})

	action.RegisterActionType(RecordTransitionActionID, func(config action.ActionConfig) (action.Action, error) {
		return NewRecordTransitionAction(config), nil
	})
}
