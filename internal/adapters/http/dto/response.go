// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
//
// Requests carry civil (restaurant-local) times as the dashboard enters
// them; responses carry both the stored UTC value and its civil rendering.
package dto

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// ToPageResponse converts a domain page, mapping every item with fn.
func ToPageResponse[T, U any](p domain.Page[T], fn func(*T) U) PageResponse[U] {
	items := make([]U, len(p.Items))
	for i := range p.Items {
		items[i] = fn(&p.Items[i])
	}
	return PageResponse[U]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
	}
}

// HoursResponse shows one day's window in civil time alongside the stored
// UTC values.
type HoursResponse struct {
	ID           int64  `json:"id"`
	DayOfWeek    int    `json:"day_of_week"`
	Day          string `json:"day"`
	OpenTime     string `json:"open_time"`
	CloseTime    string `json:"close_time"`
	OpenTimeUTC  string `json:"open_time_utc"`
	CloseTimeUTC string `json:"close_time_utc"`
	Display      string `json:"display"`
	Overnight    bool   `json:"overnight"`
	Enabled      bool   `json:"enabled"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ToHoursResponse converts a stored entry. A stored time that no longer
// parses is passed through unchanged rather than failing the listing.
func ToHoursResponse(c *civiltime.Converter, h *hours.OperationHours) HoursResponse {
	resp := HoursResponse{
		ID:           h.ID,
		DayOfWeek:    int(h.DayOfWeek),
		Day:          h.DayOfWeek.String(),
		OpenTime:     h.OpenTime,
		CloseTime:    h.CloseTime,
		OpenTimeUTC:  h.OpenTime,
		CloseTimeUTC: h.CloseTime,
		Enabled:      h.Enabled,
		CreatedAt:    formatTime(h.CreatedAt),
		UpdatedAt:    formatTime(h.UpdatedAt),
	}

	open, openErr := c.TimeOfDayFromUTC(h.OpenTime)
	closing, closeErr := c.TimeOfDayFromUTC(h.CloseTime)
	if openErr != nil || closeErr != nil {
		return resp
	}

	w := civiltime.Window{Open: open, Close: closing, Enabled: h.Enabled}
	resp.OpenTime = open.String()
	resp.CloseTime = closing.String()
	resp.Display = fmt.Sprintf("%s - %s", open.Display(), closing.Display())
	resp.Overnight = w.Overnight()
	return resp
}

// BulkHoursResponse is the result of replacing the weekly schedule. It
// includes both saved entries and per-entry errors.
type BulkHoursResponse struct {
	Saved     []HoursResponse `json:"saved"`
	Errors    []BulkErrorItem `json:"errors"`
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

// BulkErrorItem is a single failed entry within a bulk operation.
type BulkErrorItem struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ToBulkHoursResponse converts a ports.BulkResult to an HTTP response DTO.
func ToBulkHoursResponse(c *civiltime.Converter, result *ports.BulkResult[hours.OperationHours]) BulkHoursResponse {
	saved := make([]HoursResponse, len(result.Saved))
	for i := range result.Saved {
		saved[i] = ToHoursResponse(c, &result.Saved[i])
	}

	errs := make([]BulkErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkErrorItem{Index: e.Index, Message: e.Err.Error()}
	}

	return BulkHoursResponse{
		Saved:     saved,
		Errors:    errs,
		Total:     len(result.Saved) + len(result.Errors),
		Succeeded: len(result.Saved),
		Failed:    len(result.Errors),
	}
}

// WindowResponse is a civil business-hours window.
type WindowResponse struct {
	Open      string `json:"open"`
	Close     string `json:"close"`
	Display   string `json:"display"`
	Overnight bool   `json:"overnight"`
}

// HoursStatusResponse reports whether the restaurant is open now.
type HoursStatusResponse struct {
	Open     bool            `json:"open"`
	Text     string          `json:"text"`
	NowUTC   string          `json:"now_utc"`
	NowLocal string          `json:"now_local"`
	Day      string          `json:"day"`
	Window   *WindowResponse `json:"window,omitempty"`
}

// ToHoursStatusResponse converts a ports.HoursStatus.
func ToHoursStatusResponse(s *ports.HoursStatus) HoursStatusResponse {
	resp := HoursStatusResponse{
		Open:     s.Open,
		Text:     s.Text,
		NowUTC:   formatTime(s.Now),
		NowLocal: s.CivilNow.InputString(),
		Day:      s.CivilNow.Weekday().String(),
	}
	if s.Window != nil {
		resp.Window = &WindowResponse{
			Open:      s.Window.Open.String(),
			Close:     s.Window.Close.String(),
			Display:   fmt.Sprintf("%s - %s", s.Window.Open.Display(), s.Window.Close.Display()),
			Overnight: s.Window.Overnight(),
		}
	}
	return resp
}

// EventResponse is an event with its instants in both UTC and civil form.
type EventResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	StartsAtLocal string `json:"starts_at_local"`
	EndsAtLocal   string `json:"ends_at_local"`
	DateLabel     string `json:"date_label"`
	Status        string `json:"status"`
	ImageURL      string `json:"image_url"`
	Published     bool   `json:"published"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToEventResponse converts an event. Status is evaluated at the
// converter's current time.
func ToEventResponse(c *civiltime.Converter, e *event.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartsAt:      formatTime(e.StartsAt),
		EndsAt:        formatTime(e.EndsAt),
		StartsAtLocal: c.FormatInput(e.StartsAt),
		EndsAtLocal:   c.FormatInput(e.EndsAt),
		DateLabel:     c.FormatEventDate(e.StartsAt),
		Status:        e.StatusAt(c.Now()).String(),
		ImageURL:      e.ImageURL,
		Published:     e.Published,
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
}

// SpecialResponse is a special with its optional bounds in both forms.
type SpecialResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	PriceCents    int64   `json:"price_cents"`
	DayOfWeek     *int    `json:"day_of_week,omitempty"`
	Day           string  `json:"day,omitempty"`
	StartsAt      *string `json:"starts_at,omitempty"`
	EndsAt        *string `json:"ends_at,omitempty"`
	StartsAtLocal *string `json:"starts_at_local,omitempty"`
	EndsAtLocal   *string `json:"ends_at_local,omitempty"`
	Status        string  `json:"status"`
	ImageURL      string  `json:"image_url"`
	Active        bool    `json:"active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToSpecialResponse converts a special.
func ToSpecialResponse(c *civiltime.Converter, s *special.Special) SpecialResponse {
	resp := SpecialResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		Status:      s.StatusAt(c.Now()).String(),
		ImageURL:    s.ImageURL,
		Active:      s.Active,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
	if s.DayOfWeek != nil {
		day := int(*s.DayOfWeek)
		resp.DayOfWeek = &day
		resp.Day = s.DayOfWeek.String()
	}
	if s.StartsAt != nil {
		utc, local := formatTime(*s.StartsAt), c.FormatInput(*s.StartsAt)
		resp.StartsAt, resp.StartsAtLocal = &utc, &local
	}
	if s.EndsAt != nil {
		utc, local := formatTime(*s.EndsAt), c.FormatInput(*s.EndsAt)
		resp.EndsAt, resp.EndsAtLocal = &utc, &local
	}
	return resp
}

// CategoryResponse is a menu category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToCategoryResponse converts a menu category.
func ToCategoryResponse(cat *menu.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		SortOrder:   cat.SortOrder,
		CreatedAt:   formatTime(cat.CreatedAt),
		UpdatedAt:   formatTime(cat.UpdatedAt),
	}
}

// AddonResponse is an optional extra on a menu item.
type AddonResponse struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// ItemResponse is a menu item.
type ItemResponse struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PriceCents  int64           `json:"price_cents"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
	Addons      []AddonResponse `json:"addons"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ToItemResponse converts a menu item.
func ToItemResponse(item *menu.Item) ItemResponse {
	addons := make([]AddonResponse, len(item.Addons))
	for i, a := range item.Addons {
		addons[i] = AddonResponse{Name: a.Name, PriceCents: a.PriceCents}
	}
	return ItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		Addons:      addons,
		CreatedAt:   formatTime(item.CreatedAt),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}
}

// StoryResponse is a story.
type StoryResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToStoryResponse converts a story.
func ToStoryResponse(s *story.Story) StoryResponse {
	return StoryResponse{
		ID:        s.ID,
		Title:     s.Title,
		Body:      s.Body,
		ImageURL:  s.ImageURL,
		Published: s.Published,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

// AdminResponse is the public view of an admin. The password hash is never
// included.
type AdminResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ToAdminResponse converts an admin.
func ToAdminResponse(a *admin.Admin) AdminResponse {
	return AdminResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role.String(),
	}
}

// LoginResponse carries the bearer token issued at login.
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresAt string        `json:"expires_at"`
	Admin     AdminResponse `json:"admin"`
}

// ToLoginResponse converts a ports.Session.
func ToLoginResponse(s *ports.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token.Value,
		TokenType: "Bearer",
		ExpiresAt: formatTime(s.Token.ExpiresAt),
		Admin:     ToAdminResponse(s.Admin),
	}
}

// MediaResponse describes a stored upload.
type MediaResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ToMediaResponse converts a ports.MediaObject.
func ToMediaResponse(o *ports.MediaObject) MediaResponse {
	return MediaResponse{
		Key:         o.Key,
		URL:         o.URL,
		ContentType: o.ContentType,
		Size:        o.Size,
	}
}

// OverviewResponse is the home-page payload.
type OverviewResponse struct {
	Hours    HoursStatusResponse `json:"hours"`
	Events   []EventResponse     `json:"events"`
	Specials []SpecialResponse   `json:"specials"`
}

// ToOverviewResponse converts a ports.Overview.
func ToOverviewResponse(c *civiltime.Converter, o *ports.Overview) OverviewResponse {
	resp := OverviewResponse{
		Events:   make([]EventResponse, len(o.Events)),
		Specials: make([]SpecialResponse, len(o.Specials)),
	}
	if o.Hours != nil {
		resp.Hours = ToHoursStatusResponse(o.Hours)
	}
	for i := range o.Events {
		resp.Events[i] = ToEventResponse(c, &o.Events[i])
	}
	for i := range o.Specials {
		resp.Specials[i] = ToSpecialResponse(c, &o.Specials[i])
	}
	return resp
}

// Readiness states reported by /health/ready.
const (
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	CheckOK        = "ok"
)

// ReadinessResponse is the /health/ready payload. Checks maps each
// dependency name to "ok" or its error text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToReadinessResponse folds registry results into a response and reports
// whether every check passed.
func ToReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	resp := ReadinessResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = CheckOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}

// TimeResponse is the /health/time diagnostic payload.
type TimeResponse struct {
	UTC          string `json:"utc"`
	Local        string `json:"local"`
	Zone         string `json:"zone"`
	Abbreviation string `json:"abbreviation"`
	Offset       string `json:"offset"`
	IsDST        bool   `json:"is_dst"`
}

// ToTimeResponse converts a ports.TimeSnapshot.
func ToTimeResponse(s ports.TimeSnapshot) TimeResponse {
	return TimeResponse{
		UTC:          formatTime(s.UTC),
		Local:        s.Civil.String(),
		Zone:         s.Location,
		Abbreviation: s.Zone.Abbreviation,
		Offset:       s.Zone.Offset,
		IsDST:        s.Zone.IsDST,
	}
}

// ConvertResponse is the result of a /api/v1/time/convert call.
type ConvertResponse struct {
	Input     string `json:"input"`
	Direction string `json:"direction"`
	Result    string `json:"result"`
	Display   string `json:"display,omitempty"`
	UTC       string `json:"utc,omitempty"`
	Local     string `json:"local,omitempty"`
}

// ToTimeOfDayConvertResponse reports a time-of-day conversion.
func ToTimeOfDayConvertResponse(input string, dir ports.Direction, out civiltime.TimeOfDay) ConvertResponse {
	return ConvertResponse{
		Input:     input,
		Direction: string(dir),
		Result:    out.String(),
		Display:   out.Display(),
	}
}

// ToDateTimeConvertResponse reports a datetime conversion. Result is the
// UTC instant for to_utc and the civil datetime for from_utc.
func ToDateTimeConvertResponse(input string, dir ports.Direction, utc time.Time, local civiltime.DateTime) ConvertResponse {
	resp := ConvertResponse{
		Input:     input,
		Direction: string(dir),
		UTC:       formatTime(utc),
		Local:     local.InputString(),
	}
	resp.Result = resp.UTC
	if dir == ports.FromUTC {
		resp.Result = resp.Local
	}
	return resp
}
