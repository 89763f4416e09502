package systems

import (
	cfg "github.com/automoto/landing/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRestart creates a system that remounts the page on the Restart
// action. It is ignored while the waitlist form has focus.
func NewUpdateRestart(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		if IsModalOpen(e) {
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionRestart).JustPressed {
			restart()
		}
	}
}
