package naturesite

import (
	"errors"
	"testing"
)

func testSeed() Seed {
	return Seed{
		Posts: []BlogPost{
			{ID: "p1", Title: "First", Category: "Wildlife", Status: PostPublished},
			{ID: "p2", Title: "Second", Category: "Hiking", Status: PostPublished},
			{ID: "p3", Title: "Hidden", Category: "Wildlife", Status: PostDraft},
		},
		Config: SiteConfig{SiteName: "Test Site", PrimaryColor: "#1a4d2e"},
		Events: []CalendarEvent{
			{ID: "e1", Title: "Bird Walk", Date: "2023-11-15", Type: EventHike},
		},
		Submissions: []UserSubmission{
			{ID: "s1", Title: "Old", Status: StatusApproved},
		},
	}
}

func TestAddPostAssignsUniqueID(t *testing.T) {
	store := NewStore(testSeed())

	a := store.AddPost(BlogPost{Title: "New A"})
	b := store.AddPost(BlogPost{Title: "New B"})

	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected assigned ids, got %q and %q", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both were %q", a.ID)
	}
	if _, ok := store.GetPost(a.ID); !ok {
		t.Fatalf("expected added post %q to be retrievable", a.ID)
	}
}

func TestAddPostKeepsCallerID(t *testing.T) {
	store := NewStore(testSeed())

	p := store.AddPost(BlogPost{ID: "custom", Title: "Custom"})
	if p.ID != "custom" {
		t.Fatalf("expected caller id to survive, got %q", p.ID)
	}
}

func TestAddPostAppendsAtEnd(t *testing.T) {
	store := NewStore(testSeed())

	store.AddPost(BlogPost{ID: "p4", Title: "Last"})
	posts := store.Posts()
	if posts[len(posts)-1].ID != "p4" {
		t.Fatalf("expected new post at the end, got %q", posts[len(posts)-1].ID)
	}
}

func TestUpdatePostReplacesOnlyTarget(t *testing.T) {
	store := NewStore(testSeed())

	ok := store.UpdatePost(BlogPost{ID: "p2", Title: "Changed", Status: PostPublished})
	if !ok {
		t.Fatalf("expected update of existing post to report found")
	}

	got, _ := store.GetPost("p2")
	if got.Title != "Changed" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	other, _ := store.GetPost("p1")
	if other.Title != "First" {
		t.Fatalf("expected other posts untouched, got %q", other.Title)
	}
}

func TestUpdatePostUnknownIDIsNoOp(t *testing.T) {
	store := NewStore(testSeed())

	before := store.Posts()
	if ok := store.UpdatePost(BlogPost{ID: "missing", Title: "Ghost"}); ok {
		t.Fatalf("expected unknown id to report not found")
	}
	after := store.Posts()
	if len(before) != len(after) {
		t.Fatalf("expected no-op update, length changed %d -> %d", len(before), len(after))
	}
}

func TestDeletePostIsIdempotent(t *testing.T) {
	store := NewStore(testSeed())

	if !store.DeletePost("p1") {
		t.Fatalf("expected first delete to report found")
	}
	if store.DeletePost("p1") {
		t.Fatalf("expected second delete to report not found")
	}
	if _, ok := store.GetPost("p1"); ok {
		t.Fatalf("expected post to be gone")
	}
	if len(store.Posts()) != 2 {
		t.Fatalf("expected 2 posts left, got %d", len(store.Posts()))
	}
}

func TestPublishedPostsExcludesDrafts(t *testing.T) {
	store := NewStore(testSeed())

	for _, p := range store.PublishedPosts("") {
		if p.Status != PostPublished {
			t.Fatalf("expected only published posts, got %q with status %q", p.ID, p.Status)
		}
	}
	if len(store.PublishedPosts("")) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(store.PublishedPosts("")))
	}
}

func TestPublishedPostsFiltersByCategory(t *testing.T) {
	store := NewStore(testSeed())

	wildlife := store.PublishedPosts("Wildlife")
	if len(wildlife) != 1 || wildlife[0].ID != "p1" {
		t.Fatalf("expected only the published Wildlife post, got %v", wildlife)
	}
}

func TestGetPublishedPostHidesDrafts(t *testing.T) {
	store := NewStore(testSeed())

	if _, ok := store.GetPublishedPost("p3"); ok {
		t.Fatalf("expected draft to be hidden from public lookup")
	}
	if _, ok := store.GetPost("p3"); !ok {
		t.Fatalf("expected draft to be visible to admin lookup")
	}
}

func TestPostsReturnsCopy(t *testing.T) {
	store := NewStore(testSeed())

	posts := store.Posts()
	posts[0].Title = "mutated"
	if got, _ := store.GetPost(posts[0].ID); got.Title == "mutated" {
		t.Fatalf("expected accessor to hand out a copy")
	}
}

func TestAddSubmissionForcesPendingAndPrepends(t *testing.T) {
	store := NewStore(testSeed())

	sub := store.AddSubmission(UserSubmission{Title: "Fresh", Status: StatusApproved})
	if sub.Status != StatusPending {
		t.Fatalf("expected forced pending status, got %q", sub.Status)
	}
	if sub.ID == "" {
		t.Fatalf("expected an assigned id")
	}

	all := store.Submissions()
	if all[0].ID != sub.ID {
		t.Fatalf("expected newest submission first, got %q", all[0].ID)
	}
}

func TestUpdateSubmissionStatusTransitions(t *testing.T) {
	store := NewStore(testSeed())
	sub := store.AddSubmission(UserSubmission{Title: "Fresh"})

	found, err := store.UpdateSubmissionStatus(sub.ID, StatusApproved)
	if err != nil || !found {
		t.Fatalf("expected approve to succeed, found=%v err=%v", found, err)
	}
	found, err = store.UpdateSubmissionStatus(sub.ID, StatusRejected)
	if err != nil || !found {
		t.Fatalf("expected reject to succeed, found=%v err=%v", found, err)
	}
	found, err = store.UpdateSubmissionStatus(sub.ID, StatusApproved)
	if err != nil || !found {
		t.Fatalf("expected re-approval of a rejected entry, found=%v err=%v", found, err)
	}

	approved := store.ApprovedSubmissions()
	seen := false
	for _, s := range approved {
		if s.ID == sub.ID {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("expected re-approved submission in the approved set")
	}
}

func TestUpdateSubmissionStatusRejectsInvalid(t *testing.T) {
	store := NewStore(testSeed())

	_, err := store.UpdateSubmissionStatus("s1", StatusPending)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if got := store.Submissions()[0]; got.Status != StatusApproved {
		t.Fatalf("expected submission untouched, got status %q", got.Status)
	}
}

func TestUpdateSubmissionStatusUnknownID(t *testing.T) {
	store := NewStore(testSeed())

	found, err := store.UpdateSubmissionStatus("missing", StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected unknown id to report not found")
	}
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	store := NewStore(testSeed())

	if !store.DeleteEvent("e1") {
		t.Fatalf("expected first delete to report found")
	}
	if store.DeleteEvent("e1") {
		t.Fatalf("expected second delete to report not found")
	}
	if len(store.Events()) != 0 {
		t.Fatalf("expected no events left")
	}
}

func TestToggleAdminTwiceRestoresState(t *testing.T) {
	store := NewStore(testSeed())

	initial := store.AdminMode()
	store.ToggleAdmin()
	if store.AdminMode() == initial {
		t.Fatalf("expected toggle to flip the flag")
	}
	store.ToggleAdmin()
	if store.AdminMode() != initial {
		t.Fatalf("expected two toggles to restore the initial state")
	}
}

func TestUpdateConfigNotifiesSubscribers(t *testing.T) {
	store := NewStore(testSeed())

	var got []string
	store.OnConfigChange(func(cfg SiteConfig) {
		got = append(got, cfg.SiteName)
	})
	if len(got) != 1 || got[0] != "Test Site" {
		t.Fatalf("expected immediate notification with current config, got %v", got)
	}

	cfg := store.Config()
	cfg.SiteName = "Renamed"
	store.UpdateConfig(cfg)

	if len(got) != 2 || got[1] != "Renamed" {
		t.Fatalf("expected notification after update, got %v", got)
	}
	if store.Config().SiteName != "Renamed" {
		t.Fatalf("expected config to be replaced")
	}
}

func TestMetadataSyncTracksConfig(t *testing.T) {
	store := NewStore(testSeed())
	cfg := store.Config()
	cfg.SEO = SEOConfig{MetaTitle: "Title A", MetaDescription: "Desc A", Keywords: "a,b"}
	store.UpdateConfig(cfg)

	meta := NewMetadataSync(store)
	if m := meta.Current(); m.Title != "Title A" || m.Description != "Desc A" {
		t.Fatalf("expected snapshot of current config, got %+v", m)
	}

	cfg.SEO.MetaTitle = "Title B"
	store.UpdateConfig(cfg)
	if m := meta.Current(); m.Title != "Title B" {
		t.Fatalf("expected snapshot to follow config updates, got %+v", m)
	}
}
