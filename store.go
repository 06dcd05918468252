package naturesite

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidStatus is returned when a moderation call asks for a status other
// than approved or rejected.
var ErrInvalidStatus = errors.New("naturesite: invalid submission status")

// Store is the single source of truth for all mutable site data. Every
// collection is owned exclusively by the store; read accessors hand out
// copies, and mutations replace a whole slice under the lock rather than
// editing elements in place.
//
// Mutations on an unknown id are silent no-ops. Each mutate-by-id operation
// returns a found flag so callers that care can surface the miss themselves.
type Store struct {
	mu          sync.RWMutex
	posts       []BlogPost
	config      SiteConfig
	events      []CalendarEvent
	services    []Service
	regions     []MapRegion
	submissions []UserSubmission
	adminMode   bool

	configSubs []func(SiteConfig)
}

// NewStore creates a store populated from the given seed data.
func NewStore(seed Seed) *Store {
	return &Store{
		posts:       append([]BlogPost(nil), seed.Posts...),
		config:      seed.Config,
		events:      append([]CalendarEvent(nil), seed.Events...),
		services:    append([]Service(nil), seed.Services...),
		regions:     append([]MapRegion(nil), seed.Regions...),
		submissions: append([]UserSubmission(nil), seed.Submissions...),
	}
}

func newID() string {
	return uuid.NewString()
}

// --- Posts ---

// Posts returns every post, drafts included.
func (s *Store) Posts() []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BlogPost(nil), s.posts...)
}

// PublishedPosts returns the posts visible on public pages. If category is
// non-empty, results are filtered to that category.
func (s *Store) PublishedPosts(category string) []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []BlogPost
	for _, p := range s.posts {
		if p.Status != PostPublished {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetPost returns a post by id regardless of status (for the admin editor).
func (s *Store) GetPost(id string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}

// GetPublishedPost returns a post by id only if it is published.
func (s *Store) GetPublishedPost(id string) (BlogPost, bool) {
	p, ok := s.GetPost(id)
	if !ok || p.Status != PostPublished {
		return BlogPost{}, false
	}
	return p, true
}

// AddPost appends a post to the collection, assigning a fresh id when the
// given one is empty. The stored post is returned.
func (s *Store) AddPost(post BlogPost) BlogPost {
	if post.ID == "" {
		post.ID = newID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(append([]BlogPost(nil), s.posts...), post)
	return post
}

// UpdatePost replaces the post whose id matches. Unknown ids are a no-op and
// report found=false.
func (s *Store) UpdatePost(post BlogPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]BlogPost(nil), s.posts...)
	for i, p := range next {
		if p.ID == post.ID {
			next[i] = post
			s.posts = next
			return true
		}
	}
	return false
}

// DeletePost removes the post with the given id. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *Store) DeletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]BlogPost, 0, len(s.posts))
	found := false
	for _, p := range s.posts {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	s.posts = next
	return found
}

// --- Config ---

// Config returns the current site configuration.
func (s *Store) Config() SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// UpdateConfig replaces the whole configuration record and notifies
// subscribers. Subscribers run synchronously, outside the store lock.
func (s *Store) UpdateConfig(cfg SiteConfig) {
	s.mu.Lock()
	s.config = cfg
	subs := s.configSubs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(cfg)
	}
}

// OnConfigChange registers fn to run after every config replacement. It fires
// once immediately with the current config so subscribers start in sync.
func (s *Store) OnConfigChange(fn func(SiteConfig)) {
	s.mu.Lock()
	s.configSubs = append(s.configSubs, fn)
	cfg := s.config
	s.mu.Unlock()
	fn(cfg)
}

// --- Events ---

// Events returns every calendar event.
func (s *Store) Events() []CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CalendarEvent(nil), s.events...)
}

// AddEvent appends an event, assigning an id when the given one is empty.
func (s *Store) AddEvent(event CalendarEvent) CalendarEvent {
	if event.ID == "" {
		event.ID = newID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(append([]CalendarEvent(nil), s.events...), event)
	return event
}

// DeleteEvent removes the event with the given id; absent ids are a no-op.
func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]CalendarEvent, 0, len(s.events))
	found := false
	for _, e := range s.events {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	s.events = next
	return found
}

// --- Static catalogs ---

// Services returns the static service catalog.
func (s *Store) Services() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Service(nil), s.services...)
}

// Regions returns the static map regions with their points of interest.
func (s *Store) Regions() []MapRegion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]MapRegion(nil), s.regions...)
}

// --- Submissions ---

// Submissions returns every community submission, newest first.
func (s *Store) Submissions() []UserSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]UserSubmission(nil), s.submissions...)
}

// ApprovedSubmissions returns the entries shown in the public gallery.
func (s *Store) ApprovedSubmissions() []UserSubmission {
	return s.submissionsByStatus(StatusApproved)
}

// PendingSubmissions returns the entries awaiting moderation.
func (s *Store) PendingSubmissions() []UserSubmission {
	return s.submissionsByStatus(StatusPending)
}

func (s *Store) submissionsByStatus(status SubmissionStatus) []UserSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []UserSubmission
	for _, sub := range s.submissions {
		if sub.Status == status {
			out = append(out, sub)
		}
	}
	return out
}

// AddSubmission stores a new community entry at the front of the collection
// (newest-first is contractual here). The status is forced to pending no
// matter what the caller supplied, and an id is assigned when empty.
func (s *Store) AddSubmission(sub UserSubmission) UserSubmission {
	if sub.ID == "" {
		sub.ID = newID()
	}
	sub.Status = StatusPending
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append([]UserSubmission{sub}, s.submissions...)
	return sub
}

// UpdateSubmissionStatus sets the moderation state of the matching
// submission. Only approved and rejected are accepted; anything else returns
// ErrInvalidStatus. Unknown ids are a no-op reporting found=false.
func (s *Store) UpdateSubmissionStatus(id string, status SubmissionStatus) (bool, error) {
	if status != StatusApproved && status != StatusRejected {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]UserSubmission(nil), s.submissions...)
	for i, sub := range next {
		if sub.ID == id {
			next[i].Status = status
			s.submissions = next
			return true, nil
		}
	}
	return false, nil
}

// --- Admin flag ---

// ToggleAdmin flips the demo admin-mode flag and returns the new value. This
// flag is informational only; HTTP admin routes are gated by the server
// session, never by this value.
func (s *Store) ToggleAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminMode = !s.adminMode
	return s.adminMode
}

// AdminMode reports the current value of the demo admin-mode flag.
func (s *Store) AdminMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminMode
}
