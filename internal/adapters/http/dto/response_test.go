package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/civiltime"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/event"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/hours"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/menu"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/special"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testMeta(id int64) domain.Meta {
	return domain.Meta{ID: id, CreatedAt: testTime, UpdatedAt: testTime}
}

func TestToHoursResponse(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	h := hours.OperationHours{
		Meta:      testMeta(1),
		DayOfWeek: time.Friday,
		OpenTime:  "21:00",
		CloseTime: "06:00",
		Enabled:   true,
	}
	got := dto.ToHoursResponse(c, &h)

	if got.OpenTime != "17:00" || got.CloseTime != "02:00" {
		t.Errorf("civil = %s-%s, want 17:00-02:00", got.OpenTime, got.CloseTime)
	}
	if got.OpenTimeUTC != "21:00" || got.CloseTimeUTC != "06:00" {
		t.Errorf("utc = %s-%s, want 21:00-06:00", got.OpenTimeUTC, got.CloseTimeUTC)
	}
	if got.Display != "5:00 PM - 2:00 AM" {
		t.Errorf("Display = %q", got.Display)
	}
	if !got.Overnight {
		t.Error("Overnight = false, want true")
	}
	if got.Day != "Friday" || got.DayOfWeek != 5 {
		t.Errorf("day = %d %q, want 5 Friday", got.DayOfWeek, got.Day)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
}

func TestToHoursResponse_UnreadableStoredTime(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	h := hours.OperationHours{Meta: testMeta(1), OpenTime: "garbage", CloseTime: "06:00"}
	got := dto.ToHoursResponse(c, &h)

	if got.OpenTime != "garbage" {
		t.Errorf("OpenTime = %q, want passthrough", got.OpenTime)
	}
	if got.Display != "" {
		t.Errorf("Display = %q, want empty", got.Display)
	}
}

func TestToBulkHoursResponse(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	result := &ports.BulkResult[hours.OperationHours]{
		Saved: []hours.OperationHours{
			{Meta: testMeta(1), DayOfWeek: time.Monday, OpenTime: "13:00", CloseTime: "21:00", Enabled: true},
		},
		Errors: []ports.BulkError{{Index: 1, Err: errors.New("boom")}},
	}
	got := dto.ToBulkHoursResponse(c, result)

	if got.Total != 2 || got.Succeeded != 1 || got.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", got.Total, got.Succeeded, got.Failed)
	}
	if got.Errors[0].Index != 1 || got.Errors[0].Message != "boom" {
		t.Errorf("Errors[0] = %+v", got.Errors[0])
	}
	if got.Saved[0].OpenTime != "09:00" {
		t.Errorf("Saved[0].OpenTime = %q, want 09:00", got.Saved[0].OpenTime)
	}
}

func TestToHoursStatusResponse(t *testing.T) {
	t.Parallel()

	w := civiltime.Window{
		Open:    civiltime.MustParseTimeOfDay("17:00"),
		Close:   civiltime.MustParseTimeOfDay("23:00"),
		Enabled: true,
	}
	s := &ports.HoursStatus{
		Open:     true,
		Text:     "Open until 11:00 PM",
		Now:      time.Date(2025, 8, 15, 23, 0, 0, 0, time.UTC),
		CivilNow: civiltime.DateTime{Year: 2025, Month: time.August, Day: 15, Time: civiltime.MustParseTimeOfDay("19:00")},
		Window:   &w,
	}
	got := dto.ToHoursStatusResponse(s)

	if got.NowLocal != "2025-08-15T19:00" {
		t.Errorf("NowLocal = %q", got.NowLocal)
	}
	if got.Day != "Friday" {
		t.Errorf("Day = %q, want Friday", got.Day)
	}
	if got.Window == nil || got.Window.Display != "5:00 PM - 11:00 PM" {
		t.Errorf("Window = %+v", got.Window)
	}

	s.Window = nil
	if dto.ToHoursStatusResponse(s).Window != nil {
		t.Error("Window != nil for status without a window")
	}
}

func TestToEventResponse(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	e := event.Event{
		Meta:      testMeta(7),
		Title:     "Jazz night",
		StartsAt:  time.Date(2025, 8, 9, 15, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2025, 8, 9, 18, 30, 0, 0, time.UTC),
		Published: true,
	}
	got := dto.ToEventResponse(c, &e)

	if got.StartsAt != "2025-08-09T15:00:00Z" {
		t.Errorf("StartsAt = %q", got.StartsAt)
	}
	if got.StartsAtLocal != "2025-08-09T11:00" {
		t.Errorf("StartsAtLocal = %q", got.StartsAtLocal)
	}
	if got.EndsAtLocal != "2025-08-09T14:30" {
		t.Errorf("EndsAtLocal = %q", got.EndsAtLocal)
	}
	if got.DateLabel != "Aug 9 at 11 A.M" {
		t.Errorf("DateLabel = %q", got.DateLabel)
	}
	if got.Status != "ended" {
		t.Errorf("Status = %q, want ended", got.Status)
	}
}

func TestToSpecialResponse(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	day := time.Tuesday
	start := time.Date(2025, 8, 1, 4, 0, 0, 0, time.UTC)
	s := special.Special{Meta: testMeta(2), Title: "Taco Tuesday", DayOfWeek: &day, StartsAt: &start, Active: true}
	got := dto.ToSpecialResponse(c, &s)

	if got.DayOfWeek == nil || *got.DayOfWeek != 2 || got.Day != "Tuesday" {
		t.Errorf("day = %v %q", got.DayOfWeek, got.Day)
	}
	if got.StartsAtLocal == nil || *got.StartsAtLocal != "2025-08-01T00:00" {
		t.Errorf("StartsAtLocal = %v", got.StartsAtLocal)
	}
	if got.EndsAt != nil {
		t.Errorf("EndsAt = %v, want nil", got.EndsAt)
	}
	if got.Status != "current" {
		t.Errorf("Status = %q, want current", got.Status)
	}

	raw, err := json.Marshal(dto.ToSpecialResponse(c, &special.Special{Title: "x"}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "day_of_week") || strings.Contains(string(raw), "ends_at") {
		t.Errorf("optional fields not omitted: %s", raw)
	}
}

func TestToItemResponse(t *testing.T) {
	t.Parallel()

	item := menu.Item{
		Meta:       testMeta(4),
		CategoryID: 2,
		Name:       "Burger",
		PriceCents: 1800,
		Available:  true,
		Addons:     []menu.Addon{{Name: "Bacon", PriceCents: 250}},
	}
	got := dto.ToItemResponse(&item)

	if got.CategoryID != 2 || got.PriceCents != 1800 {
		t.Errorf("got %+v", got)
	}
	if len(got.Addons) != 1 || got.Addons[0].PriceCents != 250 {
		t.Errorf("Addons = %+v", got.Addons)
	}

	empty := dto.ToItemResponse(&menu.Item{Name: "Water"})
	if empty.Addons == nil {
		t.Error("Addons = nil, want empty slice for JSON []")
	}
}

func TestToLoginResponse(t *testing.T) {
	t.Parallel()

	a := &admin.Admin{Meta: testMeta(1), Email: "owner@example.com", PasswordHash: "secret-hash", Role: admin.RoleOwner}
	got := dto.ToLoginResponse(&ports.Session{
		Admin: a,
		Token: ports.Token{Value: "tok", ExpiresAt: testTime},
	})

	if got.TokenType != "Bearer" || got.Token != "tok" {
		t.Errorf("token = %q %q", got.TokenType, got.Token)
	}
	if got.Admin.Role != "owner" {
		t.Errorf("Role = %q", got.Admin.Role)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "secret-hash") {
		t.Error("password hash leaked into login response")
	}
}

func TestToPageResponse(t *testing.T) {
	t.Parallel()

	p := domain.Page[menu.Category]{
		Items:    []menu.Category{{Meta: testMeta(1), Name: "Mains"}},
		Total:    21,
		Page:     2,
		PageSize: 10,
	}
	got := dto.ToPageResponse(p, dto.ToCategoryResponse)

	if got.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", got.TotalPages)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Mains" {
		t.Errorf("Items = %+v", got.Items)
	}
}

func TestToTimeResponse(t *testing.T) {
	t.Parallel()
	c := newConverter(t, summerNoon)

	got := dto.ToTimeResponse(ports.TimeSnapshot{
		UTC:      summerNoon,
		Civil:    c.UTCToCivil(summerNoon),
		Zone:     c.ZoneInfo(summerNoon),
		Location: "America/Toronto",
	})

	if got.Local != "2025-08-15T12:00:00" {
		t.Errorf("Local = %q", got.Local)
	}
	if got.Abbreviation != "EDT" || got.Offset != "-04:00" || !got.IsDST {
		t.Errorf("zone = %s %s %v", got.Abbreviation, got.Offset, got.IsDST)
	}
}

func TestToDateTimeConvertResponse(t *testing.T) {
	t.Parallel()

	utc := time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC)
	local := civiltime.DateTime{Year: 2025, Month: time.November, Day: 2, Time: civiltime.MustParseTimeOfDay("01:30")}

	to := dto.ToDateTimeConvertResponse("2025-11-02T01:30", ports.ToUTC, utc, local)
	if to.Result != "2025-11-02T06:30:00Z" {
		t.Errorf("to_utc Result = %q", to.Result)
	}
	from := dto.ToDateTimeConvertResponse("2025-11-02T06:30:00Z", ports.FromUTC, utc, local)
	if from.Result != "2025-11-02T01:30" {
		t.Errorf("from_utc Result = %q", from.Result)
	}
}
