// Package sched is a client for the session export API of sched.org.
package sched

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"infopage/infras/otel"
	"infopage/internal/domains/event/model/dto"
	"infopage/shared/constant"
	"infopage/shared/failure"
	"infopage/shared/timezone"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	baseURLFormat = "https://%s.sched.org"
	exportPath    = "/api/session/export"
	exportFields  = "event_key,id,active,start_time_ts,end_time_ts,name,venue_id,venue"

	errorPrefix = "Error exporting session"
)

var errMarker = []byte("ERR: ")

// Client fetches sessions changed since its watermark. The watermark starts
// at the epoch, so the first export is complete.
type Client struct {
	http   *resty.Client
	apiKey string
	otel   otel.Otel
	now    func() time.Time

	mu        sync.Mutex
	watermark time.Time
}

type Option func(*Client)

// WithBaseURL replaces https://{event}.sched.org.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithClock replaces time.Now as the source of fetch times.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func New(event, apiKey, userAgent string, otl otel.Otel, opts ...Option) *Client {
	client := &Client{
		http: resty.New().
			SetBaseURL(fmt.Sprintf(baseURLFormat, event)).
			SetTimeout(constant.HTTPClientTimeout).
			SetRetryCount(0).
			SetHeader(constant.RequestHeaderUserAgent, userAgent),
		apiKey:    apiKey,
		otel:      otl,
		now:       time.Now,
		watermark: time.Unix(0, 0),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Watermark is the start time of the last successful export.
func (c *Client) Watermark() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.watermark
}

// Export fetches the sessions changed since the watermark, at most limit of
// them when limit is positive. The watermark advances only when the whole
// response converted.
func (c *Client) Export(ctx context.Context, limit int) (res []dto.ImportEvent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sched.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	started := c.now()

	params := map[string]string{
		"api_key":    c.apiKey,
		"format":     "json",
		"strip_html": "1",
		"fields":     exportFields,
		"since":      strconv.FormatInt(c.watermark.Unix(), 10),
	}

	if limit > 0 {
		params["page"] = "1"
		params["limit"] = strconv.Itoa(limit)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(exportPath)
	if err != nil {
		log.Error().Err(err).Msg("sched export call failed")

		return nil, failure.NewAPICallError(errorPrefix+": request failed", err) //nolint:wrapcheck
	}

	scope.SetAttribute("http.status_code", resp.StatusCode())

	if resp.StatusCode() != http.StatusOK {
		return nil, failure.NewAPICallError(fmt.Sprintf("%s: HTTP error: %d", errorPrefix, resp.StatusCode()), nil) //nolint:wrapcheck
	}

	body := resp.Body()
	if bytes.HasPrefix(body, errMarker) {
		message := strings.TrimSpace(string(body[len(errMarker):]))

		return nil, failure.NewAPICallError(fmt.Sprintf("%s: Call error: %s", errorPrefix, message), nil) //nolint:wrapcheck
	}

	res, err = decode(body)
	if err != nil {
		return nil, failure.NewAPICallError(errorPrefix+": Invalid data", err) //nolint:wrapcheck
	}

	c.watermark = started

	log.Info().Int("sessions", len(res)).Time("watermark", started).Msg("sched export fetched")

	return res, nil
}

// text accepts a JSON string or number.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*t = text(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a string or a number: %w", err)
	}

	*t = text(num.String())

	return nil
}

type session struct {
	ID      text   `json:"id"`
	Active  string `json:"active"`
	Start   text   `json:"start_time_ts"`
	End     text   `json:"end_time_ts"`
	Name    string `json:"name"`
	VenueID text   `json:"venue_id"`
	Venue   string `json:"venue"`
}

func decode(body []byte) ([]dto.ImportEvent, error) {
	var sessions []session
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	events := make([]dto.ImportEvent, 0, len(sessions))

	for i, s := range sessions {
		event, err := s.toImportEvent()
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}

		events = append(events, event)
	}

	return events, nil
}

func (s session) toImportEvent() (dto.ImportEvent, error) {
	id, err := parseID(string(s.ID))
	if err != nil {
		return dto.ImportEvent{}, err
	}

	start, err := parseTimestamp(string(s.Start))
	if err != nil {
		return dto.ImportEvent{}, fmt.Errorf("invalid start_time_ts: %w", err)
	}

	end, err := parseTimestamp(string(s.End))
	if err != nil {
		return dto.ImportEvent{}, fmt.Errorf("invalid end_time_ts: %w", err)
	}

	venueID, err := strconv.ParseInt(string(s.VenueID), 10, 64)
	if err != nil {
		return dto.ImportEvent{}, fmt.Errorf("invalid venue_id: %w", err)
	}

	return dto.ImportEvent{
		ID:      id,
		Name:    s.Name,
		VenueID: venueID,
		Venue:   s.Venue,
		Active:  strings.EqualFold(s.Active, "Y"),
		Start:   start,
		End:     end,
	}, nil
}

// parseID reads a UUID, or a decimal session id stored in the low 64 bits.
func parseID(value string) (uuid.UUID, error) {
	if id, err := uuid.Parse(value); err == nil {
		return id, nil
	}

	num, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", value) //nolint:err113
	}

	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], num)

	return id, nil
}

func parseTimestamp(value string) (time.Time, error) {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return time.Unix(seconds, 0).In(timezone.GetLocation()), nil
}
