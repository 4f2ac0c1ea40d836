package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/audit"
	"github.com/ravenstudio/raven-community-api/internal/config"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	infraRepo "github.com/ravenstudio/raven-community-api/internal/infra/repository"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/notify"
	"github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.Message
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		MailFrom: "Raven Community <no-reply@raven.community>",
		Business: config.BusinessConfig{
			OpenHour:            6,
			CloseHour:           22,
			SlotDurationMinutes: 60,
		},
	}
}

func newBookSlot(t *testing.T, db *gorm.DB, mailer notify.Mailer) *BookSlot {
	t.Helper()

	log := logger.NewNop()
	return NewBookSlot(
		directory.NewClientDirectory(infraRepo.NewClientGormRepository(db)),
		infraRepo.NewAppointmentGormRepository(db),
		testConfig(),
		mailer,
		nil,
		audit.NewDispatcher(audit.New(db), log),
		log,
	)
}

func TestBookSlot_CreatesAppointment(t *testing.T) {
	db := openTestDB(t)
	mailer := &recordingMailer{}
	uc := newBookSlot(t, db, mailer)

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	ap, err := uc.Execute(context.Background(), BookSlotInput{
		ClientName:  "Ada",
		ClientEmail: "ada@example.com",
		Service:     "Consultation",
		StartTime:   start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ap.StartTime.Equal(start) {
		t.Fatalf("unexpected start %v", ap.StartTime)
	}
	if !ap.EndTime.Equal(start.Add(time.Hour)) {
		t.Fatalf("end time must be start + 60m, got %v", ap.EndTime)
	}
	if ap.ClientID == 0 {
		t.Fatalf("appointment not bound to a client")
	}
	if mailer.count() != 1 {
		t.Fatalf("expected 1 confirmation email, got %d", mailer.count())
	}
}

func TestBookSlot_SameStartTimeConflicts(t *testing.T) {
	db := openTestDB(t)
	uc := newBookSlot(t, db, &recordingMailer{})
	ctx := context.Background()

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	in := BookSlotInput{
		ClientName:  "Ada",
		ClientEmail: "ada@example.com",
		Service:     "Consultation",
		StartTime:   start,
	}
	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// A different client wanting the same instant still conflicts:
	// the calendar is one shared resource.
	in.ClientName = "Eve"
	in.ClientEmail = "eve@example.com"
	_, err := uc.Execute(ctx, in)
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 appointment got %d", count)
	}
}

func TestBookSlot_UniqueIndexIsTheRealGuard(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAppointmentGormRepository(db)
	ctx := context.Background()

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	first := &models.Appointment{ClientID: 1, Service: "a", StartTime: start, EndTime: start.Add(time.Hour)}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// Insert directly, skipping the advisory pre-check, the way a
	// concurrent racer would land.
	second := &models.Appointment{ClientID: 2, Service: "b", StartTime: start, EndTime: start.Add(time.Hour)}
	err := repo.Create(ctx, second)
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict from the unique index, got %v", err)
	}
}

func TestBookSlot_MailFailureDoesNotVoidBooking(t *testing.T) {
	db := openTestDB(t)
	uc := newBookSlot(t, db, &recordingMailer{fail: true})

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	if _, err := uc.Execute(context.Background(), BookSlotInput{
		ClientName:  "Ada",
		ClientEmail: "ada@example.com",
		Service:     "Consultation",
		StartTime:   start,
	}); err != nil {
		t.Fatalf("booking must succeed despite mail failure, got %v", err)
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 appointment got %d", count)
	}
}

func TestGetAvailability_ExcludesBookedAndPast(t *testing.T) {
	db := openTestDB(t)
	uc := newBookSlot(t, db, &recordingMailer{})
	ctx := context.Background()

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, hour := range []int{9, 14} {
		if _, err := uc.Execute(ctx, BookSlotInput{
			ClientName:  "Ada",
			ClientEmail: "ada@example.com",
			Service:     "Consultation",
			StartTime:   day.Add(time.Duration(hour) * time.Hour),
		}); err != nil {
			t.Fatalf("booking hour %d: %v", hour, err)
		}
	}

	avail := NewGetAvailability(infraRepo.NewAppointmentGormRepository(db), testConfig(), nil)
	avail.now = func() time.Time { return day } // midnight: nothing is past yet

	slots, err := avail.Execute(ctx, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 14 {
		t.Fatalf("expected 14 open slots got %d: %v", len(slots), slots)
	}
	for _, s := range slots {
		if s == "09:00" || s == "14:00" {
			t.Fatalf("booked slot leaked: %v", slots)
		}
	}
}
