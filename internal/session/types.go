package session

import (
	"sync"
	"time"

	"morning-assistant/internal/model"
)

// Stage identifies the current question of the routine onboarding flow
type Stage string

const (
	StageHabits     Stage = "HABITS"
	StageActivities Stage = "ACTIVITIES"
	StageGoals      Stage = "GOALS"
)

// RoutineDraft is the in-progress state of the routine onboarding flow
type RoutineDraft struct {
	Stage      Stage
	Habits     []string
	Activities []string
	Goals      []string
}

// Session holds one user's conversation state. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	id        string
	scope     model.Scope
	turns     []model.ConversationTurn
	draft     *RoutineDraft
	profile   *model.Profile
	createdAt time.Time
	updatedAt time.Time
}

func newSession(id string, scope model.Scope) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		scope:     scope,
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Scope returns the owner of the session
func (s *Session) Scope() model.Scope {
	return s.scope
}

// AppendTurn records a conversation turn, trimming the transcript when it
// outgrows the stored cap
func (s *Session) AppendTurn(role model.Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, model.ConversationTurn{
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	})
	if len(s.turns) > maxStoredTurns {
		s.turns = s.turns[len(s.turns)-maxStoredTurns:]
	}
	s.updatedAt = time.Now()
}

// History returns a copy of the most recent turns, capped at limit.
// A non-positive limit returns the full stored transcript.
func (s *Session) History(limit int) []model.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := s.turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]model.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

// Draft returns a copy of the in-progress routine draft, or nil when no
// onboarding flow is active
func (s *Session) Draft() *RoutineDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil
	}
	out := *s.draft
	out.Habits = append([]string(nil), s.draft.Habits...)
	out.Activities = append([]string(nil), s.draft.Activities...)
	out.Goals = append([]string(nil), s.draft.Goals...)
	return &out
}

// SetDraft stores a copy of the routine draft. Passing nil clears it.
func (s *Session) SetDraft(d *RoutineDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d == nil {
		s.draft = nil
		return
	}
	in := *d
	in.Habits = append([]string(nil), d.Habits...)
	in.Activities = append([]string(nil), d.Activities...)
	in.Goals = append([]string(nil), d.Goals...)
	s.draft = &in
}

// Profile returns a copy of the completed onboarding profile, or nil
func (s *Session) Profile() *model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil
	}
	out := model.Profile{
		Habits:     append([]string(nil), s.profile.Habits...),
		Activities: append([]string(nil), s.profile.Activities...),
		Goals:      append([]string(nil), s.profile.Goals...),
	}
	return &out
}

// SetProfile stores a copy of the completed onboarding profile
func (s *Session) SetProfile(p *model.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		s.profile = nil
		return
	}
	s.profile = &model.Profile{
		Habits:     append([]string(nil), p.Habits...),
		Activities: append([]string(nil), p.Activities...),
		Goals:      append([]string(nil), p.Goals...),
	}
}

// Reset clears the transcript, draft and profile while keeping the session
// identity alive
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = nil
	s.draft = nil
	s.profile = nil
	s.updatedAt = time.Now()
}
