package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/story"
)

// EntityService is the CRUD service port shared by every managed entity.
// Implemented by the application layer; called by inbound adapters (handlers).
type EntityService[T any] interface {
	// List returns one page of entities. Paging values are clamped to the
	// configured limits.
	List(ctx context.Context, params domain.ListParams) (domain.Page[T], error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if the entity does not exist.
	Get(ctx context.Context, id int64) (*T, error)

	// Create validates and persists a new entity, returning it with
	// server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the entity fails validation.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update validates and replaces an existing entity.
	// Returns domain.ErrNotFound if the entity does not exist.
	Update(ctx context.Context, id int64, entity *T) (*T, error)

	// Delete removes an entity.
	// Returns domain.ErrNotFound if the entity does not exist.
	Delete(ctx context.Context, id int64) error
}

// HoursStatus is the restaurant's open/closed state at one instant.
type HoursStatus struct {
	Open     bool
	Text     string
	Now      time.Time
	CivilNow civiltime.DateTime
	// Window is the civil window the status text was derived from; nil
	// when no hours are configured for today.
	Window *civiltime.Window
}

// HoursService manages weekly operation hours. Stored times are UTC.
type HoursService interface {
	EntityService[hours.OperationHours]

	// ReplaceWeek upserts one entry per day concurrently. Uses partial
	// success semantics: each entry succeeds or fails independently.
	ReplaceWeek(ctx context.Context, week []hours.OperationHours) (*BulkResult[hours.OperationHours], error)

	// Status evaluates all enabled windows, including overnight ones that
	// opened yesterday, against the current civil time.
	Status(ctx context.Context) (*HoursStatus, error)
}

// BulkError records a single failed item within a bulk operation.
type BulkError struct {
	Index int
	Err   error
}

// BulkResult holds the outcomes of a bulk operation. Saved contains
// successfully stored entities; Errors contains per-item failures.
type BulkResult[T any] struct {
	Saved  []T
	Errors []BulkError
}

// EventService manages events.
type EventService interface {
	EntityService[event.Event]

	// Active returns published events that have not ended yet, soonest
	// first.
	Active(ctx context.Context, limit int) ([]event.Event, error)
}

// SpecialService manages specials.
type SpecialService interface {
	EntityService[special.Special]

	// Today returns active specials offered on the current civil day.
	Today(ctx context.Context) ([]special.Special, error)
}

// MenuService manages menu categories and items.
type MenuService interface {
	Categories() EntityService[menu.Category]
	Items() EntityService[menu.Item]
}

// StoryService manages stories.
type StoryService interface {
	EntityService[story.Story]
}

// Session is the outcome of a successful login.
type Session struct {
	Admin *admin.Admin
	Token Token
}

// AuthService authenticates dashboard admins.
type AuthService interface {
	// Login checks credentials and issues a bearer token.
	// Returns domain.ErrUnauthorized for unknown emails and bad passwords
	// alike.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Authenticate verifies a bearer token.
	// Returns domain.ErrUnauthorized if the token is invalid or the admin
	// no longer exists.
	Authenticate(ctx context.Context, token string) (*Principal, error)

	// Me returns the admin behind a principal.
	Me(ctx context.Context, p *Principal) (*admin.Admin, error)

	// EnsureAdmin creates the bootstrap admin if no admin with that email
	// exists. It is a no-op otherwise.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// MediaService uploads images on behalf of admins.
type MediaService interface {
	Upload(ctx context.Context, upload MediaUpload) (*MediaObject, error)
	Delete(ctx context.Context, key string) error
}

// Overview is the home-page payload.
type Overview struct {
	Hours    *HoursStatus
	Events   []event.Event
	Specials []special.Special
}

// OverviewService assembles the home page.
type OverviewService interface {
	Overview(ctx context.Context) (*Overview, error)
}

// Direction selects which way a time-of-day conversion goes.
type Direction string

const (
	ToUTC   Direction = "to_utc"
	FromUTC Direction = "from_utc"
)

// IsValid returns true if the direction is one of the defined constants.
func (d Direction) IsValid() bool {
	return d == ToUTC || d == FromUTC
}

// TimeSnapshot is the diagnostic view of the server clock.
type TimeSnapshot struct {
	UTC      time.Time
	Civil    civiltime.DateTime
	Zone     civiltime.ZoneInfo
	Location string
}

// TimeService exposes civil-time conversion to inbound adapters.
type TimeService interface {
	// Snapshot reports current UTC, current civil time and the zone state.
	Snapshot(ctx context.Context) TimeSnapshot

	// ConvertTimeOfDay converts a time of day in the given direction using
	// today as the reference date.
	ConvertTimeOfDay(ctx context.Context, value string, dir Direction) (civiltime.TimeOfDay, error)

	// ConvertDateTime converts a civil datetime to UTC (ToUTC) or an RFC
	// 3339 instant to civil time (FromUTC).
	ConvertDateTime(ctx context.Context, value string, dir Direction) (time.Time, civiltime.DateTime, error)
}
