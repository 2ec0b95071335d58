package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"morning-assistant/internal/model"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore(Config{Capacity: 10, TTL: time.Minute})
	scope := model.Scope{UserID: "telegram_42", Username: "dawn"}

	t.Run("empty id creates a new session", func(t *testing.T) {
		sess, existed := store.GetOrCreate("", scope)
		if existed {
			t.Error("expected a fresh session for an empty id")
		}
		if sess.ID() == "" {
			t.Error("expected a generated session id")
		}
		if sess.Scope().UserID != "telegram_42" {
			t.Errorf("expected scope to be kept, got %q", sess.Scope().UserID)
		}
	})

	t.Run("same id returns the same session", func(t *testing.T) {
		first, _ := store.GetOrCreate("telegram_42", scope)
		first.AppendTurn(model.RoleUser, "hello")

		second, existed := store.GetOrCreate("telegram_42", scope)
		if !existed {
			t.Error("expected the session to already exist")
		}
		if got := second.History(0); len(got) != 1 || got[0].Text != "hello" {
			t.Errorf("expected the stored transcript, got %+v", got)
		}
	})

	t.Run("unknown id creates a session under that id", func(t *testing.T) {
		sess, existed := store.GetOrCreate("telegram_77", scope)
		if existed {
			t.Error("expected a fresh session for an unknown id")
		}
		if sess.ID() != "telegram_77" {
			t.Errorf("expected the caller's id to be kept, got %q", sess.ID())
		}
	})
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(Config{Capacity: 10, TTL: 50 * time.Millisecond})
	scope := model.Scope{UserID: "telegram_42"}

	store.GetOrCreate("short-lived", scope)
	if _, ok := store.Get("short-lived"); !ok {
		t.Fatal("expected the session right after creation")
	}

	time.Sleep(120 * time.Millisecond)

	if _, ok := store.Get("short-lived"); ok {
		t.Error("expected the session to expire after the TTL")
	}
}

func TestStore_CapacityEviction(t *testing.T) {
	store := NewStore(Config{Capacity: 2, TTL: time.Minute})
	scope := model.Scope{UserID: "telegram_42"}

	store.GetOrCreate("a", scope)
	store.GetOrCreate("b", scope)
	store.GetOrCreate("c", scope)

	if store.Len() != 2 {
		t.Fatalf("expected the store to hold 2 sessions, got %d", store.Len())
	}
	if _, ok := store.Get("a"); ok {
		t.Error("expected the oldest session to be evicted")
	}
}

func TestSession_History(t *testing.T) {
	sess := newSession("s", model.Scope{UserID: "u"})

	for i := 0; i < 5; i++ {
		sess.AppendTurn(model.RoleUser, fmt.Sprintf("message %d", i))
	}

	t.Run("limit caps to the most recent turns", func(t *testing.T) {
		got := sess.History(2)
		if len(got) != 2 {
			t.Fatalf("expected 2 turns, got %d", len(got))
		}
		if got[0].Text != "message 3" || got[1].Text != "message 4" {
			t.Errorf("expected the most recent turns, got %+v", got)
		}
	})

	t.Run("non-positive limit returns everything", func(t *testing.T) {
		if got := sess.History(0); len(got) != 5 {
			t.Errorf("expected 5 turns, got %d", len(got))
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		got := sess.History(0)
		got[0].Text = "mutated"
		if fresh := sess.History(0); fresh[0].Text == "mutated" {
			t.Error("expected History to return a copy")
		}
	})
}

func TestSession_TranscriptCap(t *testing.T) {
	sess := newSession("s", model.Scope{UserID: "u"})

	for i := 0; i < maxStoredTurns+10; i++ {
		sess.AppendTurn(model.RoleUser, fmt.Sprintf("message %d", i))
	}

	got := sess.History(0)
	if len(got) != maxStoredTurns {
		t.Fatalf("expected the transcript to cap at %d turns, got %d", maxStoredTurns, len(got))
	}
	if got[0].Text != "message 10" {
		t.Errorf("expected the oldest turns to be dropped, got %q first", got[0].Text)
	}
}

func TestSession_DraftCopySemantics(t *testing.T) {
	sess := newSession("s", model.Scope{UserID: "u"})

	draft := &RoutineDraft{Stage: StageActivities, Habits: []string{"coffee"}}
	sess.SetDraft(draft)

	draft.Habits[0] = "mutated"
	if got := sess.Draft(); got.Habits[0] != "coffee" {
		t.Error("expected SetDraft to store a copy")
	}

	got := sess.Draft()
	got.Habits[0] = "mutated"
	if again := sess.Draft(); again.Habits[0] != "coffee" {
		t.Error("expected Draft to return a copy")
	}

	sess.SetDraft(nil)
	if sess.Draft() != nil {
		t.Error("expected a nil draft after clearing")
	}
}

func TestSession_Reset(t *testing.T) {
	sess := newSession("s", model.Scope{UserID: "u"})
	sess.AppendTurn(model.RoleUser, "hello")
	sess.SetDraft(&RoutineDraft{Stage: StageHabits})
	sess.SetProfile(&model.Profile{Habits: []string{"coffee"}, Activities: []string{"run"}, Goals: []string{"focus"}})

	sess.Reset()

	if len(sess.History(0)) != 0 {
		t.Error("expected an empty transcript after reset")
	}
	if sess.Draft() != nil {
		t.Error("expected no draft after reset")
	}
	if sess.Profile() != nil {
		t.Error("expected no profile after reset")
	}
}

func TestSession_ConcurrentAppend(t *testing.T) {
	sess := newSession("s", model.Scope{UserID: "u"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess.AppendTurn(model.RoleUser, fmt.Sprintf("message %d", n))
		}(i)
	}
	wg.Wait()

	if got := sess.History(0); len(got) != 20 {
		t.Errorf("expected 20 turns, got %d", len(got))
	}
}
