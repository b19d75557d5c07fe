package app

// State holds the shared application state
type State struct {
	// UI
	ActiveModal string // empty if no modal

	// Status bar
	Status string
	Error  string
}

// NewState creates a new state with defaults
func NewState() *State {
	return &State{}
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// SetError records an error for the status bar
func (s *State) SetError(err error) {
	if err == nil {
		s.Error = ""
		return
	}
	s.Error = err.Error()
}
