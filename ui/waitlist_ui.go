package ui

import (
	"bytes"
	"image/color"
	"log"
	"strings"

	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/waitlist"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// WaitlistUI is the modal signup form. It mirrors a waitlist.Form: typed text
// flows into the form, and status, errors and busy state flow back out.
type WaitlistUI struct {
	UI *ebitenui.UI

	form      *waitlist.Form
	formCopy  cfg.FormCopy
	returning bool

	inputs      [3]*widget.TextInput
	fieldLabels [3]*widget.Label
	noteLabel   *widget.Label
	statusLabel *widget.Label
	errorLabel  *widget.Label
	okLabel     *widget.Label
	submitBtn   *widget.Button
	closeBtn    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewWaitlistUI(form *waitlist.Form, formCopy cfg.FormCopy, returning bool) *WaitlistUI {
	ui := &WaitlistUI{
		form:      form,
		formCopy:  formCopy,
		returning: returning,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *WaitlistUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 26}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 13}
}

func (ui *WaitlistUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Overlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(28)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(ui.newLabel(ui.formCopy.Title, &ui.titleFace, cfg.Colors.Text))
	panel.AddChild(ui.newLabel(ui.formCopy.Subtitle, &ui.normalFace, cfg.Colors.MutedText))

	note := ""
	if ui.returning {
		note = ui.formCopy.Returning
	}
	ui.noteLabel = ui.newLabel(note, &ui.smallFace, cfg.Colors.Success)
	panel.AddChild(ui.noteLabel)

	fields := []struct {
		field       waitlist.Field
		label       string
		placeholder string
	}{
		{waitlist.FieldName, ui.formCopy.NameLabel, ui.formCopy.NamePlaceholder},
		{waitlist.FieldHandle, ui.formCopy.HandleLabel, ui.formCopy.HandlePlaceholder},
		{waitlist.FieldEmail, ui.formCopy.EmailLabel, ui.formCopy.EmailPlaceholder},
	}
	for _, f := range fields {
		panel.AddChild(ui.newLabel(f.label, &ui.normalFace, cfg.Colors.Text))
		ui.inputs[f.field] = ui.newInput(f.placeholder)
		panel.AddChild(ui.inputs[f.field])
		ui.fieldLabels[f.field] = ui.newLabel("", &ui.smallFace, cfg.Colors.Error)
		panel.AddChild(ui.fieldLabels[f.field])
	}

	ui.statusLabel = ui.newLabel("", &ui.smallFace, cfg.Colors.MutedText)
	panel.AddChild(ui.statusLabel)
	ui.errorLabel = ui.newLabel("", &ui.smallFace, cfg.Colors.Error)
	panel.AddChild(ui.errorLabel)
	ui.okLabel = ui.newLabel("", &ui.normalFace, cfg.Colors.Success)
	panel.AddChild(ui.okLabel)

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *WaitlistUI) newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

func (ui *WaitlistUI) newInput(placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(364, 34),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Colors.Dropdown),
			Disabled: image.NewNineSliceColor(cfg.Colors.GridLine),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Colors.Text,
			Disabled:      cfg.Colors.MutedText,
			Caret:         cfg.Colors.Text,
			DisabledCaret: cfg.Colors.MutedText,
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(8)),
	)
}

func (ui *WaitlistUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.closeBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 38)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.Colors.Dropdown),
			Hover:    image.NewNineSliceColor(cfg.Colors.GridLine),
			Pressed:  image.NewNineSliceColor(cfg.Colors.GridLine),
			Disabled: image.NewNineSliceColor(cfg.Colors.Dropdown),
		}),
		widget.ButtonOpts.Text("Close", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.Colors.Text,
			Disabled: cfg.Colors.MutedText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.form.Dismiss()
		}),
	)
	container.AddChild(ui.closeBtn)

	ui.submitBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 38)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.Colors.Button),
			Hover:    image.NewNineSliceColor(cfg.Colors.ButtonHover),
			Pressed:  image.NewNineSliceColor(cfg.Colors.ButtonHover),
			Disabled: image.NewNineSliceColor(cfg.Colors.MutedText),
		}),
		widget.ButtonOpts.Text(ui.formCopy.Submit, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.Colors.ButtonText,
			Disabled: cfg.Colors.Dropdown,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.pushFields()
			_ = ui.form.Submit()
		}),
	)
	container.AddChild(ui.submitBtn)

	return container
}

// pushFields copies typed text into the form.
func (ui *WaitlistUI) pushFields() {
	for _, f := range waitlist.Fields {
		if txt := ui.inputs[f].GetText(); txt != ui.form.Entry().Get(f) {
			ui.form.SetField(f, txt)
		}
	}
}

// pullFields copies the form entry back into the inputs, e.g. after the
// form cleared itself on success.
func (ui *WaitlistUI) pullFields() {
	for _, f := range waitlist.Fields {
		if v := ui.form.Entry().Get(f); ui.inputs[f].GetText() != v {
			ui.inputs[f].SetText(v)
		}
	}
}

// SetReturning shows or hides the "already on the list" note.
func (ui *WaitlistUI) SetReturning(returning bool) {
	ui.returning = returning
	ui.noteLabel.Label = ""
	if returning {
		ui.noteLabel.Label = ui.formCopy.Returning
	}
}

// Sync refreshes the widgets from the form state.
func (ui *WaitlistUI) Sync() {
	if !ui.form.IsOpen() {
		ui.pullFields()
		return
	}
	ui.pushFields()

	busy := ui.form.Busy()
	for _, f := range waitlist.Fields {
		ui.inputs[f].GetWidget().Disabled = busy
		ui.fieldLabels[f].Label = ui.fieldMessage(f)
	}
	ui.submitBtn.GetWidget().Disabled = busy || ui.form.Status() == waitlist.Success
	ui.closeBtn.GetWidget().Disabled = busy

	ui.statusLabel.Label = ""
	ui.errorLabel.Label = ""
	ui.okLabel.Label = ""
	switch ui.form.Status() {
	case waitlist.Submitting:
		ui.statusLabel.Label = ui.formCopy.Submitting
	case waitlist.Success:
		ui.okLabel.Label = ui.formCopy.SuccessTitle + " " + ui.formCopy.SuccessBody
	default:
		ui.errorLabel.Label = ui.form.Message()
	}
}

func (ui *WaitlistUI) fieldMessage(f waitlist.Field) string {
	if !ui.form.FieldError(f) {
		return ""
	}
	v := ui.form.Entry().Get(f)
	if f == waitlist.FieldEmail && strings.TrimSpace(v) != "" {
		return waitlist.MsgInvalidEmail
	}
	return "Required"
}

func (ui *WaitlistUI) Update() {
	ui.UI.Update()
	ui.Sync()
}

func (ui *WaitlistUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
