package jsearch

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Config defines JSearch API client settings
type Config struct {
	APIKey     string
	APIHost    string
	BaseURL    string
	HTTPClient *http.Client
	NumPages   int
}

// Client queries the JSearch keyword search API (RapidAPI hosted)
type Client struct {
	apiKey     string
	apiHost    string
	baseURL    string
	httpClient *http.Client
	numPages   int
}

type searchResponse struct {
	Status string    `json:"status"`
	Data   []Posting `json:"data"`
}

// Posting is one raw JSearch result. The upstream payload is loosely typed,
// so identifier and salary fields tolerate shape drift instead of failing
// the whole envelope.
type Posting struct {
	JobID        FlexString          `json:"job_id"`
	Title        FlexString          `json:"job_title"`
	EmployerName FlexString          `json:"employer_name"`
	EmployerLogo string              `json:"employer_logo"`
	ApplyLink    string              `json:"job_apply_link"`
	Description  string              `json:"job_description"`
	City         string              `json:"job_city"`
	State        string              `json:"job_state"`
	Country      string              `json:"job_country"`
	PostedAtUTC  string              `json:"job_posted_at_datetime_utc"`
	MinSalary    MaybeNumber         `json:"job_min_salary"`
	MaxSalary    MaybeNumber         `json:"job_max_salary"`
	Highlights   map[string][]string `json:"job_highlights"`
}

// FlexString decodes a JSON string or number; any other shape becomes empty.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(b, &num); err == nil {
		*s = FlexString(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}

	*s = ""
	return nil
}

// MaybeNumber accepts only actual JSON numbers; strings, nulls, and other
// shapes decode to zero, which downstream normalization treats as absent.
type MaybeNumber float64

func (n *MaybeNumber) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*n = 0
		return nil
	}
	*n = MaybeNumber(f)
	return nil
}
