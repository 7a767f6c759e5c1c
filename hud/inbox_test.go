package hud

import (
	"sync"
	"testing"
)

func TestInboxDrainAppliesInOrder(t *testing.T) {
	in := NewInbox(8)
	s := NewStore(Options{})

	in.Post(farming(10, 200))
	in.Post(farming(20, 200))
	in.Post(Update{Skill: 3, Name: "Mining", Progress: 5, Required: 100})

	if got := in.Pending(); got != 3 {
		t.Fatalf("expected 3 pending, got %d", got)
	}
	if got := in.Drain(s, at(0)); got != 3 {
		t.Fatalf("expected 3 applied, got %d", got)
	}
	if got := in.Pending(); got != 0 {
		t.Fatalf("expected empty inbox, got %d", got)
	}

	r, _ := s.Lookup(0)
	if r.Progress != 20 {
		t.Fatalf("expected last update to win, got %d", r.Progress)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", s.Len())
	}
}

func TestInboxFullDrops(t *testing.T) {
	in := NewInbox(2)
	if !in.Post(farming(1, 2)) || !in.Post(farming(2, 2)) {
		t.Fatal("expected first two posts to succeed")
	}
	if in.Post(farming(3, 2)) {
		t.Fatal("expected post to fail when full")
	}
	if got := in.Dropped(); got != 1 {
		t.Fatalf("expected 1 dropped, got %d", got)
	}

	in.Drain(NewStore(Options{}), at(0))
	if !in.Post(farming(4, 2)) {
		t.Fatal("expected post to succeed after drain")
	}
}

func TestInboxConcurrentPost(t *testing.T) {
	in := NewInbox(1024)
	s := NewStore(Options{})

	var wg sync.WaitGroup
	for skill := 0; skill < 6; skill++ {
		wg.Add(1)
		go func(id SkillID) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				in.Post(Update{Skill: id, Progress: i, Required: 1000})
			}
		}(SkillID(skill))
	}
	wg.Wait()

	if got := in.Drain(s, at(0)); got != 600 {
		t.Fatalf("expected 600 applied, got %d", got)
	}
	if got := s.Len(); got != 6 {
		t.Fatalf("expected one record per skill, got %d", got)
	}
	for id := SkillID(0); id < 6; id++ {
		r, _ := s.Lookup(id)
		if r.Progress != 99 {
			t.Fatalf("skill %d: expected final progress 99, got %d", id, r.Progress)
		}
	}
}
