package api

import "glimpse/internal/domain"

// SearchResponse is the envelope for /api/search and the news/video variants.
type SearchResponse struct {
	Query        string             `json:"query"`
	Results      []domain.WebResult `json:"results"`
	TotalResults int64              `json:"total_results"`
	Page         int                `json:"page"`
	PerPage      int                `json:"per_page"`
	TimeTaken    float64            `json:"time_taken,omitempty"`
}

// ImageSearchResponse is the envelope for /api/search/images.
type ImageSearchResponse struct {
	Query        string               `json:"query"`
	Results      []domain.ImageResult `json:"results"`
	TotalResults int64                `json:"total_results"`
	Page         int                  `json:"page"`
	PerPage      int                  `json:"per_page"`
	HasMore      bool                 `json:"has_more"`
}

// VideoSearchResponse is the envelope for /api/search/videos.
type VideoSearchResponse struct {
	Query        string               `json:"query"`
	Results      []domain.VideoResult `json:"results"`
	TotalResults int64                `json:"total_results"`
	Page         int                  `json:"page"`
	PerPage      int                  `json:"per_page"`
}

// NewsSearchResponse is the envelope for /api/search/news.
type NewsSearchResponse struct {
	Query        string              `json:"query"`
	Results      []domain.NewsResult `json:"results"`
	TotalResults int64               `json:"total_results"`
	Page         int                 `json:"page"`
	PerPage      int                 `json:"per_page"`
}

// SuggestResponse is the envelope for /api/suggest and /api/suggest/trending.
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// BangParseResponse is the envelope for /api/bangs/parse.
type BangParseResponse struct {
	Bang     *domain.Bang `json:"bang,omitempty"`
	Query    string       `json:"query"`
	Redirect string       `json:"redirect,omitempty"`
}

// SearchOptions carries the optional parameters shared by the search
// endpoints. Zero values are omitted from the request.
type SearchOptions struct {
	Page    int
	PerPage int
	Filters map[string]string
}

// ReverseImageRequest is the body for /api/search/images/reverse.
// Exactly one of URL or Base64 is set.
type ReverseImageRequest struct {
	URL    string `json:"url,omitempty"`
	Base64 string `json:"base64,omitempty"`
}
