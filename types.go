package naturesite

// PostStatus is the publication state of a blog post. Drafts never appear on
// public pages; the editor may toggle freely in both directions.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// BlogPost is a single article managed from the admin dashboard.
type BlogPost struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Excerpt  string     `yaml:"excerpt"`
	Content  string     `yaml:"content"`
	Author   string     `yaml:"author"`
	Date     string     `yaml:"date"` // YYYY-MM-DD
	ImageURL string     `yaml:"imageUrl"`
	Category string     `yaml:"category"`
	Tags     []string   `yaml:"tags"`
	Status   PostStatus `yaml:"status"`
}

// SocialLinks holds the footer social media URLs.
type SocialLinks struct {
	Facebook  string `yaml:"facebook"`
	Twitter   string `yaml:"twitter"`
	Instagram string `yaml:"instagram"`
}

// SEOConfig drives the document title and meta description. Changing it via
// UpdateConfig notifies metadata subscribers.
type SEOConfig struct {
	MetaTitle       string `yaml:"metaTitle"`
	MetaDescription string `yaml:"metaDescription"`
	Keywords        string `yaml:"keywords"`
}

// SiteConfig is the singleton site settings record. It is replaced wholesale
// on update; partial patches are the caller's responsibility to merge first.
type SiteConfig struct {
	SiteName        string      `yaml:"siteName"`
	SiteDescription string      `yaml:"siteDescription"`
	LogoURL         string      `yaml:"logoUrl"` // may be a data: URL after upload
	PrimaryColor    string      `yaml:"primaryColor"`
	ContactEmail    string      `yaml:"contactEmail"`
	SocialLinks     SocialLinks `yaml:"socialLinks"`
	SEO             SEOConfig   `yaml:"seo"`
}

// EventType categorizes a calendar event.
type EventType string

const (
	EventHike      EventType = "hike"
	EventWorkshop  EventType = "workshop"
	EventVolunteer EventType = "volunteer"
	EventOther     EventType = "other"
)

// CalendarEvent is a dated entry shown on the event calendar. Events carry a
// plain YYYY-MM-DD date string and no time zone; multiple events may share a
// date.
type CalendarEvent struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Date        string    `yaml:"date"` // YYYY-MM-DD
	Type        EventType `yaml:"type"`
	Description string    `yaml:"description"`
}

// Service is a static catalog entry on the services page. Read-only.
type Service struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Price       string `yaml:"price,omitempty"`
}

// PoiType categorizes a point of interest on the map.
type PoiType string

const (
	PoiTrail     PoiType = "trail"
	PoiViewpoint PoiType = "viewpoint"
	PoiCenter    PoiType = "center"
	PoiLandmark  PoiType = "landmark"
)

// PointOfInterest is a marker inside a map region. X and Y are percentage
// coordinates in the 0-100 range.
type PointOfInterest struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        PoiType `yaml:"type"`
	Description string  `yaml:"description"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
}

// MapRegion is a static map area with its ordered points of interest.
type MapRegion struct {
	ID               string            `yaml:"id"`
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	ImageURL         string            `yaml:"imageUrl"`
	PointsOfInterest []PointOfInterest `yaml:"pointsOfInterest"`
}

// SubmissionType categorizes a community submission.
type SubmissionType string

const (
	SubmissionSighting SubmissionType = "sighting"
	SubmissionReview   SubmissionType = "review"
	SubmissionPhoto    SubmissionType = "photo"
)

// ValidSubmissionType reports whether t is one of the known entry types.
func ValidSubmissionType(t SubmissionType) bool {
	switch t {
	case SubmissionSighting, SubmissionReview, SubmissionPhoto:
		return true
	}
	return false
}

// SubmissionStatus is a user submission's moderation state. New submissions
// always start pending; moderators may approve or reject, and a rejected
// entry may later be approved. Approved entries never return to pending.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// UserSubmission is a community entry (sighting, review, or photo) awaiting
// or past moderation. Only approved entries appear in the public gallery.
type UserSubmission struct {
	ID          string           `yaml:"id"`
	UserName    string           `yaml:"userName"`
	Type        SubmissionType   `yaml:"type"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	ImageURL    string           `yaml:"imageUrl,omitempty"`
	Date        string           `yaml:"date"` // YYYY-MM-DD
	Status      SubmissionStatus `yaml:"status"`
}
