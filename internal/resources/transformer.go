package resources

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// dateFormat is the timestamp layout used across all API responses.
const dateFormat = "2006-01-02 15:04:05"

// Transformer turns models into response payloads. It owns the public
// base URL so stored relative asset paths come out absolute.
type Transformer struct {
	baseURL string
}

func NewTransformer(baseURL string) *Transformer {
	return &Transformer{baseURL: strings.TrimRight(baseURL, "/")}
}

// AbsoluteURL leaves full URLs alone and prefixes everything else with
// the public base URL.
func (t *Transformer) AbsoluteURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return t.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (t *Transformer) absoluteURLs(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = t.AbsoluteURL(p)
	}
	return out
}

func formatTime(ts time.Time) string {
	return ts.Format(dateFormat)
}

func formatTimePtr(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.Format("2006-01-02")
	return &s
}

// decodeList reads a JSON column holding a string array. Broken or
// empty column data degrades to an empty list.
func decodeList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// decodeMap reads a JSON column holding a string map.
func decodeMap(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]string{}
	}
	return out
}

// decodeObject reads a JSON column holding free-form content.
func decodeObject(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]interface{}{}
	}
	return out
}
