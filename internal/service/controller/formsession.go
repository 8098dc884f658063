package controller

// Mode is the state of a form session.
type Mode int

const (
	// Creating drafts a new record.
	Creating Mode = iota
	// Editing drafts changes to an identified existing record.
	Editing
)

// FormSession holds the draft values for a single record and whether the
// form is creating or editing. Drafts survive failed submissions so the
// user can correct and retry.
type FormSession struct {
	mode   Mode
	editID int64
	draft  Draft
}

// NewFormSession creates an empty session in Creating mode.
func NewFormSession() *FormSession {
	return &FormSession{draft: Draft{}}
}

// Mode returns the current mode.
func (s *FormSession) Mode() Mode { return s.mode }

// EditingID returns the identifier of the record being edited and whether
// the session is in Editing mode.
func (s *FormSession) EditingID() (int64, bool) {
	return s.editID, s.mode == Editing
}

// SetField stores one draft value.
func (s *FormSession) SetField(name, value string) {
	s.draft[name] = value
}

// Field returns one draft value.
func (s *FormSession) Field(name string) string {
	return s.draft[name]
}

// Draft returns a copy of the current draft values.
func (s *FormSession) Draft() Draft {
	copied := make(Draft, len(s.draft))
	for name, value := range s.draft {
		copied[name] = value
	}

	return copied
}

// BeginEdit switches to Editing mode, seeding the draft from an existing
// record's values.
func (s *FormSession) BeginEdit(id int64, seed Draft) {
	s.mode = Editing
	s.editID = id
	s.draft = Draft{}
	for name, value := range seed {
		s.draft[name] = value
	}
}

// Reset returns to Creating mode with an empty draft. Safe to call any
// number of times.
func (s *FormSession) Reset() {
	s.mode = Creating
	s.editID = 0
	s.draft = Draft{}
}
