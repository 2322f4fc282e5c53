package adzuna

import "net/http"

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the Adzuna country-scoped job search API
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

type searchResponse struct {
	Count   int       `json:"count"`
	Results []Posting `json:"results"`
}

// Posting is one raw Adzuna result
type Posting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     Company  `json:"company"`
	Location    Location `json:"location"`
	Description string   `json:"description"`
	Created     string   `json:"created"`
	RedirectURL string   `json:"redirect_url"`
	SalaryMin   float64  `json:"salary_min"`
	SalaryMax   float64  `json:"salary_max"`
}

// Company is the advertiser summary attached to a posting
type Company struct {
	DisplayName string `json:"display_name"`
}

// Location is the area hierarchy attached to a posting, ordered from country
// down to the most specific place.
type Location struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

// City returns the most specific area element, falling back to the display name.
func (l Location) City() string {
	if len(l.Area) > 0 {
		return l.Area[len(l.Area)-1]
	}
	return l.DisplayName
}

// Region returns the first sub-country area element when present.
func (l Location) Region() string {
	if len(l.Area) > 1 {
		return l.Area[1]
	}
	return ""
}
