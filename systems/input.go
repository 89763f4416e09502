package systems

import (
	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls keys and the pointer and updates the InputComponent.
// Must run BEFORE any system that reacts to clicks.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	input.CursorX, input.CursorY = float64(x), float64(y)
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	// A tap counts as a click at the touch point
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		input.CursorX, input.CursorY = float64(tx), float64(ty)
		input.Clicked = true
	}
	input.Consumed = false
	input.Hovering = ""
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// takeClick returns true once per frame for the first system that claims the
// pointer press.
func takeClick(input *components.InputData) bool {
	if !input.Clicked || input.Consumed {
		return false
	}
	input.Consumed = true
	return true
}

// UpdateCursor shows a pointer cursor over clickable regions.
func UpdateCursor(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if input.Hovering != "" {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
