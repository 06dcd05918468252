package naturesite

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	cases := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000"},
		{"http://localhost:3000", []string{"blog"}, "http://localhost:3000/blog/"},
		{"http://localhost:3000", []string{"blog", "42"}, "http://localhost:3000/blog/42/"},
		{"https://example.com/base", []string{"about"}, "https://example.com/base/about/"},
	}
	for _, tc := range cases {
		if got := BuildURL(tc.base, tc.segments...); got != tc.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tc.base, tc.segments, got, tc.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" forest ", "", "  ", "trail"})
	want := []string{"forest", "trail"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterEmpty = %v, want %v", got, want)
	}
}

func TestCategoriesSortedAndDeduped(t *testing.T) {
	posts := []BlogPost{
		{Category: "Skills"},
		{Category: "Ecology"},
		{Category: "Skills"},
		{Category: " "},
	}
	got := Categories(posts)
	want := []string{"Ecology", "Skills"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
}

func TestRelatedPostsSharesTags(t *testing.T) {
	current := BlogPost{ID: "1", Tags: []string{"forest", "science"}}
	posts := []BlogPost{
		{ID: "1", Tags: []string{"forest"}},          // self, excluded
		{ID: "2", Tags: []string{"Forest", "hikes"}}, // case-insensitive match
		{ID: "3", Tags: []string{"mushrooms"}},       // no overlap
		{ID: "4", Tags: []string{"science"}},
	}
	got := RelatedPosts(current, posts)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "4" {
		t.Fatalf("RelatedPosts = %v", got)
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	cfg := SiteConfig{SiteName: "Navigating Nature", SiteDescription: "Your guide."}
	out := WebsiteJsonLD(cfg, "http://localhost:3000")
	if !strings.Contains(out, `"@type":"WebSite"`) {
		t.Fatalf("expected WebSite type, got %s", out)
	}
	if !strings.Contains(out, `"name":"Navigating Nature"`) {
		t.Fatalf("expected site name, got %s", out)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	post := BlogPost{ID: "1", Title: "Title", Author: "Ranger Rick", Date: "2023-10-15", Tags: []string{"a", "b"}}
	out := BlogPostingJsonLD(post, SiteConfig{SiteName: "Site"}, "http://localhost:3000")
	if !strings.Contains(out, `"@type":"BlogPosting"`) {
		t.Fatalf("expected BlogPosting type, got %s", out)
	}
	if !strings.Contains(out, `"url":"http://localhost:3000/blog/1/"`) {
		t.Fatalf("expected post url, got %s", out)
	}
	if !strings.Contains(out, `"keywords":"a, b"`) {
		t.Fatalf("expected keywords, got %s", out)
	}
}
