package services

import (
	"context"
	"strings"
	"sync"

	"law_site_go/models"
	"law_site_go/services/cms"
)

// SearchResults is the categorized bundle returned for one query. Failures
// are isolated per category: a category that failed carries its message in
// Errors and an empty slice, while the others keep their results.
type SearchResults struct {
	Team     []models.TeamMember `json:"team"`
	Services []models.Service    `json:"services"`
	Blogs    []models.BlogPost   `json:"blogs"`
	Errors   SearchErrors        `json:"errors"`
}

// SearchErrors carries per-category failure messages; empty string means ok.
type SearchErrors struct {
	Team     string `json:"team,omitempty"`
	Services string `json:"services,omitempty"`
	Blogs    string `json:"blogs,omitempty"`
}

// Partial reports whether at least one category failed while another
// succeeded or the query ran at all.
func (r SearchResults) Partial() bool {
	failed := r.Errors.Team != "" || r.Errors.Services != "" || r.Errors.Blogs != ""
	return failed && !r.Failed()
}

// Failed reports whether every category failed.
func (r SearchResults) Failed() bool {
	return r.Errors.Team != "" && r.Errors.Services != "" && r.Errors.Blogs != ""
}

// Count returns the total number of hits across categories.
func (r SearchResults) Count() int {
	return len(r.Team) + len(r.Services) + len(r.Blogs)
}

// SearchService fans a free-text query out to the team-member, service and
// blog collections concurrently and merges the categorized results.
type SearchService struct {
	cms *cms.Client
}

// NewSearchService creates a new search service instance
func NewSearchService(client *cms.Client) *SearchService {
	return &SearchService{cms: client}
}

// Search performs the three sub-queries as a parallel join, so latency is
// bounded by the slowest sub-query rather than their sum. A blank or
// whitespace-only query short-circuits to an empty bundle without issuing
// any request.
func (s *SearchService) Search(ctx context.Context, query, locale string) SearchResults {
	results := SearchResults{
		Team:     []models.TeamMember{},
		Services: []models.Service{},
		Blogs:    []models.BlogPost{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return results
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		team, err := s.cms.SearchTeamMembers(ctx, query, locale)
		if err != nil {
			results.Errors.Team = err.Error()
			return
		}
		if team != nil {
			results.Team = team
		}
	}()

	go func() {
		defer wg.Done()
		svcs, err := s.cms.SearchServices(ctx, query, locale)
		if err != nil {
			results.Errors.Services = err.Error()
			return
		}
		if svcs != nil {
			results.Services = svcs
		}
	}()

	go func() {
		defer wg.Done()
		blogs, err := s.cms.SearchBlogPosts(ctx, query, locale)
		if err != nil {
			results.Errors.Blogs = err.Error()
			return
		}
		if blogs != nil {
			results.Blogs = blogs
		}
	}()

	wg.Wait()
	return results
}

// SearchStatus is the consumer-visible state of a search box.
type SearchStatus string

const (
	SearchIdle      SearchStatus = "idle"
	SearchSearching SearchStatus = "searching"
	SearchReady     SearchStatus = "ready"
	SearchFailed    SearchStatus = "failed"
)

// SearchState guards a displayed result set against out-of-order responses.
// Every new search takes a token from Begin; a response is applied only if
// its token is still the newest one, so a slow early response can never
// overwrite the results of a later query.
type SearchState struct {
	mu      sync.Mutex
	seq     uint64
	status  SearchStatus
	query   string
	results SearchResults
	errMsg  string
}

// NewSearchState returns a state container in the idle state.
func NewSearchState() *SearchState {
	return &SearchState{status: SearchIdle}
}

// Begin registers a new in-flight search and returns its token. Any token
// handed out earlier is invalidated.
func (s *SearchState) Begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = SearchSearching
	s.query = query
	return s.seq
}

// Apply stores results for the search identified by token. Stale tokens are
// discarded and Apply reports false.
func (s *SearchState) Apply(token uint64, results SearchResults) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.results = results
	if results.Failed() {
		s.status = SearchFailed
		s.errMsg = results.Errors.Services
	} else {
		s.status = SearchReady
		s.errMsg = ""
	}
	return true
}

// Reset clears the query and results and returns to idle.
func (s *SearchState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = SearchIdle
	s.query = ""
	s.results = SearchResults{}
	s.errMsg = ""
}

// Snapshot returns the current status, query and results.
func (s *SearchState) Snapshot() (SearchStatus, string, SearchResults) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.query, s.results
}
