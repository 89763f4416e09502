package systems

import (
	cfg "github.com/automoto/landing/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWaitlist applies finished submissions and handles the form keys:
// Back closes the form, Select submits it.
func UpdateWaitlist(e *ecs.ECS) {
	w := getWaitlist(e)
	if w == nil || w.Form == nil {
		return
	}
	w.Form.Update()
	if !w.Form.IsOpen() {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionBack).JustPressed {
		w.Form.Dismiss()
		return
	}
	if GetAction(input, cfg.ActionSelect).JustPressed {
		_ = w.Form.Submit()
	}
}
