package systems

import (
	"encoding/json"
	"log"
	"time"

	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/waitlist"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsKey = "settings"
	receiptKey  = "waitlist"
)

// SavedSettings represents the window preferences stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// SavedReceipt records a successful waitlist submission
type SavedReceipt struct {
	Name     string    `json:"name"`
	Handle   string    `json:"handle"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager under appName
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v interface{}) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("[persistence] Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		// Nothing saved yet
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[persistence] Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v interface{}) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[persistence] Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("[persistence] Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem(settingsKey, &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during start-up before the scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadReceipt returns the stored waitlist receipt, or nil when this install
// has not joined yet.
func LoadReceipt() (*SavedReceipt, error) {
	var r SavedReceipt
	ok, err := loadItem(receiptKey, &r)
	if !ok {
		return nil, err
	}
	return &r, nil
}

// SaveReceipt stores entry as the waitlist receipt.
func SaveReceipt(entry waitlist.Entry, at time.Time) error {
	return saveItem(receiptKey, &SavedReceipt{
		Name:     entry.Name,
		Handle:   entry.Handle,
		Email:    entry.Email,
		JoinedAt: at,
	})
}

// HasReceipt returns true if a waitlist receipt exists
func HasReceipt() bool {
	r, err := LoadReceipt()
	return err == nil && r != nil
}

// ClearReceipt removes the stored receipt
func ClearReceipt() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	// Save empty data to clear the receipt
	if err := gdataManager.SaveItem(receiptKey, nil); err != nil {
		log.Printf("[persistence] Warning: Could not clear receipt: %v", err)
		return err
	}
	return nil
}

// UpdateSettings toggles fullscreen and saves changed preferences.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if settings.Dirty {
		settings.Dirty = false
		saved, _ := LoadSettings()
		if saved == nil {
			saved = &SavedSettings{ResolutionIndex: -1}
		}
		saved.Fullscreen = settings.Fullscreen
		_ = SaveSettings(saved)
	}
}
