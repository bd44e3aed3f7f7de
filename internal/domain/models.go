package domain

// WebResult represents a single web search result
type WebResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Snippet   string `json:"snippet"`
	Domain    string `json:"domain"`
	Favicon   string `json:"favicon,omitempty"`
	Published string `json:"published,omitempty"`
}

// ImageResult represents a single image search result
type ImageResult struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Title        string `json:"title"`
	SourceURL    string `json:"source_url"`
	SourceDomain string `json:"source_domain"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// VideoResult represents a single video search result
type VideoResult struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
	Channel      string `json:"channel"`
	Published    string `json:"published,omitempty"`
	Views        int64  `json:"views,omitempty"`
}

// NewsResult represents a single news search result
type NewsResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Snippet   string `json:"snippet"`
	Source    string `json:"source"`
	Published string `json:"published"`
}

// Bang represents a shortcut token redirecting a query to an external site
type Bang struct {
	ID          int64  `json:"id"`
	Trigger     string `json:"trigger"`
	Name        string `json:"name"`
	URLTemplate string `json:"url_template"`
	Category    string `json:"category,omitempty"`
	IsBuiltin   bool   `json:"is_builtin"`
}

// Settings holds the user-facing search settings persisted by the backend
type Settings struct {
	SafeSearch     string `json:"safe_search" toml:"safe_search"`
	ResultsPerPage int    `json:"results_per_page" toml:"results_per_page"`
	Region         string `json:"region" toml:"region"`
	Language       string `json:"language" toml:"language"`
	Theme          string `json:"theme" toml:"theme"`
	OpenInNewTab   bool   `json:"open_in_new_tab" toml:"open_in_new_tab"`
	ShowThumbnails bool   `json:"show_thumbnails" toml:"show_thumbnails"`
}

// DefaultSettings returns the settings used when nothing is persisted yet.
// Values mirror the backend's defaults.
func DefaultSettings() Settings {
	return Settings{
		SafeSearch:     "moderate",
		ResultsPerPage: 10,
		Region:         "us",
		Language:       "en",
		Theme:          "system",
		OpenInNewTab:   false,
		ShowThumbnails: true,
	}
}

// HistoryEntry represents a recorded search on the backend
type HistoryEntry struct {
	ID         string `json:"id"`
	Query      string `json:"query"`
	Results    int    `json:"results"`
	ClickedURL string `json:"clicked_url,omitempty"`
	SearchedAt string `json:"searched_at"`
}

// Preference represents a per-domain ranking preference
type Preference struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
	Action string `json:"action"` // upvote, downvote or block
	Level  int    `json:"level"`
}

// Lens represents a named search scope
type Lens struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Domains    []string `json:"domains,omitempty"`
	Region     string   `json:"region,omitempty"`
	FileType   string   `json:"file_type,omitempty"`
	IsBuiltIn  bool     `json:"is_built_in"`
	IsPublic   bool     `json:"is_public"`
}

// Surface identifies one of the distinct result-list contexts
type Surface string

const (
	SurfaceWeb    Surface = "web"
	SurfaceImages Surface = "images"
	SurfaceVideos Surface = "videos"
	SurfaceNews   Surface = "news"
)
