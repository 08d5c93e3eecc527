package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgDayRange     = "must be 0-6 (0 = Sunday)"
)

// validationResult returns a *domain.ValidationError for a non-empty field
// map and nil otherwise.
func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkDay(fields map[string]string, name string, day int) {
	if day < int(time.Sunday) || day > int(time.Saturday) {
		fields[name] = msgDayRange
	}
}

// HoursRequest is one day's opening window as entered in the admin
// dashboard. Times are civil (restaurant-local) wall-clock times.
type HoursRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// Validate checks that the day is in range and both times are present.
func (r *HoursRequest) Validate() error {
	fields := make(map[string]string)

	checkDay(fields, "day_of_week", r.DayOfWeek)
	if strings.TrimSpace(r.OpenTime) == "" {
		fields["open_time"] = msgRequired
	}
	if strings.TrimSpace(r.CloseTime) == "" {
		fields["close_time"] = msgRequired
	}

	return validationResult(fields)
}

// ToEntity converts the civil times to UTC for storage. Enabled defaults
// to true.
func (r *HoursRequest) ToEntity(c *civiltime.Converter) (*hours.OperationHours, error) {
	fields := make(map[string]string)

	open, err := c.TimeOfDayToUTC(r.OpenTime)
	if err != nil {
		fields["open_time"] = err.Error()
	}
	closing, err := c.TimeOfDayToUTC(r.CloseTime)
	if err != nil {
		fields["close_time"] = err.Error()
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return &hours.OperationHours{
		DayOfWeek: time.Weekday(r.DayOfWeek),
		OpenTime:  open.String(),
		CloseTime: closing.String(),
		Enabled:   enabled,
	}, nil
}

// ReplaceWeekRequest carries the whole weekly schedule.
type ReplaceWeekRequest struct {
	Days []HoursRequest `json:"days"`
}

// Validate checks the list size and every entry, prefixing field names with
// the entry index.
func (r *ReplaceWeekRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.Days) == 0:
		fields["days"] = msgMustNotEmpty
	case len(r.Days) > 7:
		fields["days"] = fmt.Sprintf("must have at most 7 entries, got %d", len(r.Days))
	}
	for i := range r.Days {
		mergeIndexed(fields, "days", i, r.Days[i].Validate())
	}

	return validationResult(fields)
}

// ToEntities converts every entry to UTC.
func (r *ReplaceWeekRequest) ToEntities(c *civiltime.Converter) ([]hours.OperationHours, error) {
	fields := make(map[string]string)
	week := make([]hours.OperationHours, 0, len(r.Days))
	for i := range r.Days {
		h, err := r.Days[i].ToEntity(c)
		if err != nil {
			mergeIndexed(fields, "days", i, err)
			continue
		}
		week = append(week, *h)
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}
	return week, nil
}

func mergeIndexed(fields map[string]string, prefix string, index int, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for k, v := range verr.Fields {
		fields[fmt.Sprintf("%s[%d].%s", prefix, index, k)] = v
	}
}

// EventRequest is the body for creating or replacing an event. StartsAt and
// EndsAt are datetime-local form values in civil time; values carrying Z or
// an offset are taken as absolute instants.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	ImageURL    string `json:"image_url"`
	Published   bool   `json:"published"`
}

// Validate checks that required fields are present.
func (r *EventRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.StartsAt) == "" {
		fields["starts_at"] = msgRequired
	}
	if strings.TrimSpace(r.EndsAt) == "" {
		fields["ends_at"] = msgRequired
	}

	return validationResult(fields)
}

// ToEntity resolves the form values to UTC instants.
func (r *EventRequest) ToEntity(c *civiltime.Converter) (*event.Event, error) {
	fields := make(map[string]string)

	start, err := c.ParseInstant(strings.TrimSpace(r.StartsAt))
	if err != nil {
		fields["starts_at"] = err.Error()
	}
	end, err := c.ParseInstant(strings.TrimSpace(r.EndsAt))
	if err != nil {
		fields["ends_at"] = err.Error()
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	return &event.Event{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		StartsAt:    start,
		EndsAt:      end,
		ImageURL:    r.ImageURL,
		Published:   r.Published,
	}, nil
}

// SpecialRequest is the body for creating or replacing a special. The day
// of week and both bounds are optional.
type SpecialRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	DayOfWeek   *int   `json:"day_of_week,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	ImageURL    string `json:"image_url"`
	Active      *bool  `json:"active,omitempty"`
}

// Validate checks that required fields are present.
func (r *SpecialRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.PriceCents < 0 {
		fields["price_cents"] = "must not be negative"
	}
	if r.DayOfWeek != nil {
		checkDay(fields, "day_of_week", *r.DayOfWeek)
	}

	return validationResult(fields)
}

// ToEntity resolves the optional bounds to UTC instants. Active defaults to
// true.
func (r *SpecialRequest) ToEntity(c *civiltime.Converter) (*special.Special, error) {
	fields := make(map[string]string)

	s := &special.Special{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		Active:      true,
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	if r.DayOfWeek != nil {
		day := time.Weekday(*r.DayOfWeek)
		s.DayOfWeek = &day
	}
	s.StartsAt = optionalInstant(c, fields, "starts_at", r.StartsAt)
	s.EndsAt = optionalInstant(c, fields, "ends_at", r.EndsAt)

	if err := validationResult(fields); err != nil {
		return nil, err
	}
	return s, nil
}

func optionalInstant(c *civiltime.Converter, fields map[string]string, name, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := c.ParseInstant(value)
	if err != nil {
		fields[name] = err.Error()
		return nil
	}
	return &t
}

// CategoryRequest is the body for creating or replacing a menu category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// Validate checks that required fields are present.
func (r *CategoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	return validationResult(fields)
}

// ToEntity maps the request to a menu category.
func (r *CategoryRequest) ToEntity() *menu.Category {
	return &menu.Category{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

// AddonRequest is an optional extra on a menu item.
type AddonRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// ItemRequest is the body for creating or replacing a menu item.
type ItemRequest struct {
	CategoryID  int64          `json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	ImageURL    string         `json:"image_url"`
	Available   *bool          `json:"available,omitempty"`
	Addons      []AddonRequest `json:"addons"`
}

// Validate checks that required fields are present.
func (r *ItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.CategoryID <= 0 {
		fields["category_id"] = msgRequired
	}

	return validationResult(fields)
}

// ToEntity maps the request to a menu item. Available defaults to true.
func (r *ItemRequest) ToEntity() *menu.Item {
	item := &menu.Item{
		CategoryID:  r.CategoryID,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		Available:   true,
		Addons:      make([]menu.Addon, len(r.Addons)),
	}
	if r.Available != nil {
		item.Available = *r.Available
	}
	for i, a := range r.Addons {
		item.Addons[i] = menu.Addon{Name: strings.TrimSpace(a.Name), PriceCents: a.PriceCents}
	}
	return item
}

// StoryRequest is the body for creating or replacing a story.
type StoryRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

// Validate checks that required fields are present.
func (r *StoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Body) == "" {
		fields["body"] = msgRequired
	}

	return validationResult(fields)
}

// ToEntity maps the request to a story.
func (r *StoryRequest) ToEntity() *story.Story {
	return &story.Story{
		Title:     strings.TrimSpace(r.Title),
		Body:      r.Body,
		ImageURL:  r.ImageURL,
		Published: r.Published,
	}
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	return validationResult(fields)
}
