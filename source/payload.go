package source

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Payload is the response envelope shared by every videolist/detail query.
type Payload struct {
	Code      FlexInt     `json:"code"`
	Msg       string      `json:"msg"`
	Page      FlexInt     `json:"page"`
	PageCount FlexInt     `json:"pagecount"`
	Limit     FlexInt     `json:"limit"`
	Total     FlexInt     `json:"total"`
	List      []RawRecord `json:"list"`
}

// OK reports whether the provider signalled success. Providers that omit the code are trusted.
func (p *Payload) OK() bool {
	return p.Code == 0 || p.Code == 1
}

// Records normalizes the payload list and stamps every record with the source key.
func (p *Payload) Records(sourceKey string) []Record {
	records := make([]Record, len(p.List))
	for i, raw := range p.List {
		records[i] = raw.Record()
		records[i].Source = sourceKey
	}
	return records
}

// Listing converts the payload into a page of records.
func (p *Payload) Listing(sourceKey string) *Listing {
	return &Listing{
		Items:      p.Records(sourceKey),
		Page:       int(p.Page),
		TotalPages: int(p.PageCount),
		Total:      int(p.Total),
	}
}

// RawRecord is a list element as sent by the provider.
type RawRecord struct {
	ID       FlexString `json:"vod_id"`
	Name     string     `json:"vod_name"`
	Pic      string     `json:"vod_pic"`
	Year     FlexString `json:"vod_year"`
	Area     string     `json:"vod_area"`
	TypeName string     `json:"type_name"`
	Content  string     `json:"vod_content"`
	Actor    string     `json:"vod_actor"`
	Director string     `json:"vod_director"`
	Lang     string     `json:"vod_lang"`
	Remarks  string     `json:"vod_remarks"`
	Score    FlexFloat  `json:"vod_score"`
	PlayURL  string     `json:"vod_play_url"`
	PlayFrom string     `json:"vod_play_from"`
}

var htmlTag = regexp.MustCompile("<.*?>")

// Record converts the raw element into the normalized model.
func (r RawRecord) Record() Record {
	synopsis := strings.ReplaceAll(r.Content, "<br>", "\n")
	synopsis = htmlTag.ReplaceAllString(synopsis, "")

	return Record{
		ID:          string(r.ID),
		Title:       strings.TrimSpace(r.Name),
		Cover:       r.Pic,
		Year:        string(r.Year),
		Region:      r.Area,
		Genre:       r.TypeName,
		Synopsis:    strings.TrimSpace(synopsis),
		Actors:      r.Actor,
		Director:    r.Director,
		Score:       float64(r.Score),
		PlaylistRaw: r.PlayURL,
	}
}

// FlexInt decodes from a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	n, err := parseNumber(b)
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// FlexFloat decodes from a JSON number or a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	n, err := parseNumber(b)
	if err != nil {
		return err
	}
	*f = FlexFloat(n)
	return nil
}

// FlexString decodes from a JSON string or a bare number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*f = FlexString(str)
	default:
		*f = FlexString(s)
	}
	return nil
}

func parseNumber(b []byte) (float64, error) {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		return 0, nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s", b)
	}
	return n, nil
}
