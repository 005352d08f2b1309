// Package workspace persists the token set the CLI is editing between
// invocations, along with which preset it came from.
package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/boostkit/internal/compression"
	"github.com/jmylchreest/boostkit/internal/propagate"
	"github.com/jmylchreest/boostkit/internal/tokens"
)

// State is the current theme being edited.
type State struct {
	Tokens tokens.Tokens
	// ActivePresetID is the preset the tokens were last reset to. It is
	// cleared by any edit.
	ActivePresetID string
	// CustomMode is set once the tokens have been edited by hand.
	CustomMode bool
}

// NewState returns the default theme with no preset selected.
func NewState() State {
	return State{Tokens: propagate.Reset()}
}

// SetRole assigns one role with the usual auto text and brand propagation.
func (s *State) SetRole(role tokens.Role, v any) error {
	next, err := propagate.SetRole(s.Tokens, role, v)
	if err != nil {
		return err
	}
	s.edited(next)
	return nil
}

// SetBrand changes the brand colour and every role still linked to it.
func (s *State) SetBrand(hex string) {
	s.edited(propagate.BrandColour(s.Tokens, hex))
}

// ApplyPreset replaces the tokens with a preset.
func (s *State) ApplyPreset(id string) error {
	t, err := propagate.Preset(id)
	if err != nil {
		return err
	}
	s.Tokens = t
	s.ActivePresetID = id
	s.CustomMode = false
	return nil
}

// Replace swaps in a complete token set, for example one loaded from the
// library or imported from a bundle.
func (s *State) Replace(t tokens.Tokens) {
	s.edited(t)
}

// Reset returns to defaults.
func (s *State) Reset() {
	*s = NewState()
}

func (s *State) edited(t tokens.Tokens) {
	s.Tokens = t
	s.ActivePresetID = ""
	s.CustomMode = true
}

// file is the on-disk layout.
type file struct {
	ActivePresetID string          `json:"activePresetId,omitempty"`
	IsCustomMode   bool            `json:"isCustomMode"`
	Tokens         json.RawMessage `json:"tokens"`
}

// Workspace reads and writes State at a fixed path. A path ending in .xz or
// .gz is stored compressed.
type Workspace struct {
	path   string
	logger hclog.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger. The default discards output.
func WithLogger(l hclog.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// New returns a Workspace stored at path.
func New(path string, opts ...Option) *Workspace {
	w := &Workspace{path: path, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the state file location.
func (w *Workspace) Path() string {
	return w.path
}

// Load reads the state file. A missing file yields NewState. Stored tokens
// are merged onto defaults so roles added since the file was written keep
// their default; unknown keys and invalid values are dropped with a warning.
func (w *Workspace) Load() (State, error) {
	data, _, err := compression.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug("no workspace state, using defaults", "path", w.path)
			return NewState(), nil
		}
		return State{}, fmt.Errorf("failed to load workspace: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return State{}, fmt.Errorf("failed to parse workspace %s: %w", w.path, err)
	}

	state := State{
		Tokens:         tokens.Defaults(),
		ActivePresetID: f.ActivePresetID,
		CustomMode:     f.IsCustomMode,
	}
	if len(bytes.TrimSpace(f.Tokens)) == 0 {
		return state, nil
	}

	t, unknown, err := tokens.DecodeJSON(f.Tokens)
	if len(unknown) > 0 {
		w.logger.Warn("ignoring unknown roles in workspace", "path", w.path, "roles", unknown)
	}
	if err != nil {
		w.logger.Warn("ignoring invalid values in workspace", "path", w.path, "error", err)
	}
	state.Tokens = t

	if state.ActivePresetID != "" {
		if _, ok := tokens.LookupPreset(state.ActivePresetID); !ok {
			w.logger.Warn("workspace names an unknown preset", "preset", state.ActivePresetID)
			state.ActivePresetID = ""
		}
	}
	return state, nil
}

// Save writes s to the state file, replacing it atomically.
func (w *Workspace) Save(s State) error {
	raw, err := json.Marshal(s.Tokens)
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	data, err := json.MarshalIndent(file{
		ActivePresetID: s.ActivePresetID,
		IsCustomMode:   s.CustomMode,
		Tokens:         raw,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode workspace: %w", err)
	}

	data, err = compression.Compress(data, compression.FormatForPath(w.path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - State directory needs to be readable
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".boostkit-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary workspace file: %w", err)
	}
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write workspace: %w", errors.Join(writeErr, closeErr))
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace workspace: %w", err)
	}

	w.logger.Debug("saved workspace", "path", w.path, "bytes", len(data), "preset", s.ActivePresetID)
	return nil
}
