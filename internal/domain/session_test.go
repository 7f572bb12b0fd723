package domain

import (
	"testing"
	"time"
)

func TestAppendTrimsToBound(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", time.Hour)
	for i := 0; i < 8; i++ {
		s.Append(Exchange{
			UserMessage: "question",
			BotResponse: "answer",
			Timestamp:   time.Now(),
		}, 5)
	}

	if len(s.History) != 5 {
		t.Fatalf("expected history bounded to 5, got %d", len(s.History))
	}
	if s.MessageCount != 8 {
		t.Fatalf("expected message count 8, got %d", s.MessageCount)
	}
}

func TestAppendDropsOldestFirst(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", time.Hour)
	msgs := []string{"a", "b", "c", "d"}
	for _, m := range msgs {
		s.Append(Exchange{UserMessage: m, Timestamp: time.Now()}, 3)
	}

	want := []string{"b", "c", "d"}
	for i, ex := range s.History {
		if ex.UserMessage != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, ex.UserMessage, want[i])
		}
	}
}

func TestRecentReturnsTrailingWindow(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", time.Hour)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		s.Append(Exchange{UserMessage: m, Timestamp: time.Now()}, 5)
	}

	recent := s.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent exchanges, got %d", len(recent))
	}
	if recent[0].UserMessage != "c" || recent[2].UserMessage != "e" {
		t.Errorf("unexpected window: %v", recent)
	}

	all := s.Recent(10)
	if len(all) != 5 {
		t.Fatalf("expected full history when n exceeds length, got %d", len(all))
	}
}

func TestExpired(t *testing.T) {
	t.Parallel()

	s := NewSession("s1", time.Minute)
	if s.Expired(time.Now()) {
		t.Fatal("fresh session should not be expired")
	}
	if !s.Expired(time.Now().Add(2 * time.Minute)) {
		t.Fatal("session should be expired past its TTL")
	}
}
