package approval

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/audit"
	"github.com/ravenstudio/raven-community-api/internal/crypto"
	domain "github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	infraRepo "github.com/ravenstudio/raven-community-api/internal/infra/repository"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/notify"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (m *recordingMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) last(t *testing.T) notify.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatalf("no mail was sent")
	}
	return m.sent[len(m.sent)-1]
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
		&models.MembershipRequest{},
		&models.RecruitmentApplication{},
		&models.ProfileUpdateRequest{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTransition(t *testing.T, db *gorm.DB, mailer notify.Mailer) *Transition {
	t.Helper()

	log := logger.NewNop()
	return NewTransition(
		infraRepo.NewRequestGormRepository(db),
		infraRepo.NewClientGormRepository(db),
		mailer,
		"Raven Community <no-reply@raven.community>",
		audit.NewDispatcher(audit.New(db), log),
		log,
	)
}

const reviewerID uint = 42

func TestMembershipApprove_CreatesMemberWithCredentials(t *testing.T) {
	db := openTestDB(t)
	mailer := &recordingMailer{}
	uc := newTransition(t, db, mailer)

	req := models.MembershipRequest{Name: "Ada", Email: "ada@example.com"}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindMembership, req.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var client models.Client
	if err := db.Where("email = ?", "ada@example.com").First(&client).Error; err != nil {
		t.Fatalf("client not created: %v", err)
	}
	if client.Role != "MEMBER" {
		t.Fatalf("expected MEMBER role got %q", client.Role)
	}
	if client.PasswordHash == nil || *client.PasswordHash == "" {
		t.Fatalf("new member must get a stored credential hash")
	}
	if client.ReferralCode == "" {
		t.Fatalf("new member must get a referral code")
	}

	var closed models.MembershipRequest
	db.First(&closed, req.ID)
	if closed.Status != string(domain.StatusApproved) {
		t.Fatalf("expected APPROVED got %q", closed.Status)
	}
	if closed.ReviewerID == nil || *closed.ReviewerID != reviewerID {
		t.Fatalf("reviewer not recorded: %+v", closed.ReviewerID)
	}
	if closed.ReviewedAt == nil {
		t.Fatalf("review time not recorded")
	}

	msg := mailer.last(t)
	if msg.To != "ada@example.com" || !strings.Contains(msg.Text, "ada@example.com") {
		t.Fatalf("welcome mail must carry the credentials: %+v", msg)
	}
}

func TestMembershipApprove_MergesRoleOnExistingClient(t *testing.T) {
	db := openTestDB(t)
	uc := newTransition(t, db, &recordingMailer{})

	client := models.Client{Name: "Ada", Email: "ada@example.com", Role: "A-TEAM", ReferralCode: "REF-x1"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	req := models.MembershipRequest{Name: "Ada", Email: "ada@example.com"}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindMembership, req.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var updated models.Client
	db.First(&updated, client.ID)
	if updated.Role != "A-TEAM,MEMBER" {
		t.Fatalf("expected merged roles got %q", updated.Role)
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 1 {
		t.Fatalf("approval must not duplicate the client, got %d rows", count)
	}
}

func TestMembershipReject_LeavesClientsAlone(t *testing.T) {
	db := openTestDB(t)
	mailer := &recordingMailer{}
	uc := newTransition(t, db, mailer)

	req := models.MembershipRequest{Name: "Ada", Email: "ada@example.com"}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindMembership, req.ID, domain.ActionReject, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var closed models.MembershipRequest
	db.First(&closed, req.ID)
	if closed.Status != string(domain.StatusRejected) {
		t.Fatalf("expected REJECTED got %q", closed.Status)
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejection must not create a client")
	}
	if mailer.count() != 0 {
		t.Fatalf("rejection sends no mail, got %d", mailer.count())
	}
}

func TestTransition_DecidedRequestLooksMissing(t *testing.T) {
	db := openTestDB(t)
	uc := newTransition(t, db, &recordingMailer{})
	ctx := context.Background()

	req := models.MembershipRequest{Name: "Ada", Email: "ada@example.com"}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	if err := uc.Execute(ctx, domain.KindMembership, req.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	err := uc.Execute(ctx, domain.KindMembership, req.ID, domain.ActionReject, reviewerID)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("second decision must read as not found, got %v", err)
	}

	var closed models.MembershipRequest
	db.First(&closed, req.ID)
	if closed.Status != string(domain.StatusApproved) {
		t.Fatalf("status must stay APPROVED got %q", closed.Status)
	}
}

func TestRecruitmentApprove_CreatesATeamWithSocialLinks(t *testing.T) {
	db := openTestDB(t)
	mailer := &recordingMailer{}
	uc := newTransition(t, db, mailer)

	app := models.RecruitmentApplication{
		Name:               "Grace",
		Email:              "grace@example.com",
		ResumeURL:          "https://files.example.com/resume.pdf",
		PhotoIDURL:         "https://files.example.com/id.png",
		BackgroundCheckURL: "https://files.example.com/check.pdf",
		InstagramURL:       "https://instagram.com/grace",
		YouTubeURL:         "https://youtube.com/@grace",
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindRecruitment, app.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var client models.Client
	if err := db.Where("email = ?", "grace@example.com").First(&client).Error; err != nil {
		t.Fatalf("client not created: %v", err)
	}
	if client.Role != "A-TEAM" {
		t.Fatalf("expected A-TEAM got %q", client.Role)
	}
	if client.InstagramURL != app.InstagramURL || client.YouTubeURL != app.YouTubeURL {
		t.Fatalf("social links not copied: %+v", client)
	}
	if client.FacebookURL != "" {
		t.Fatalf("empty links must not be copied")
	}
	if client.PasswordHash == nil {
		t.Fatalf("new A-TEAM client must get a credential hash")
	}
	pwd := mailedPassword(mailer.last(t))
	if pwd == "" {
		t.Fatalf("welcome mail must carry the credential")
	}
	if *client.PasswordHash == pwd {
		t.Fatalf("credential must be stored hashed, not plain")
	}
	if !crypto.VerifyPassword(*client.PasswordHash, pwd) {
		t.Fatalf("stored hash must verify the mailed credential")
	}
}

func TestRecruitmentApprove_MergesExistingClient(t *testing.T) {
	db := openTestDB(t)
	mailer := &recordingMailer{}
	uc := newTransition(t, db, mailer)

	client := models.Client{Name: "Grace", Email: "grace@example.com", Role: "MEMBER", ReferralCode: "REF-x2"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	app := models.RecruitmentApplication{
		Name:               "Grace",
		Email:              "grace@example.com",
		ResumeURL:          "r",
		PhotoIDURL:         "p",
		BackgroundCheckURL: "b",
		TikTokURL:          "https://tiktok.com/@grace",
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindRecruitment, app.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var updated models.Client
	db.First(&updated, client.ID)
	if updated.Role != "MEMBER,A-TEAM" {
		t.Fatalf("expected merged roles got %q", updated.Role)
	}
	if updated.TikTokURL != app.TikTokURL {
		t.Fatalf("social link not copied onto existing client")
	}
	if mailer.count() != 0 {
		t.Fatalf("existing clients keep their credentials, no mail expected")
	}
}

func TestProfileUpdateApprove_AppliesOnlyRequestedFields(t *testing.T) {
	db := openTestDB(t)
	uc := newTransition(t, db, &recordingMailer{})

	client := models.Client{
		Name:            "Ada",
		Email:           "ada@example.com",
		Role:            "MEMBER",
		ReferralCode:    "REF-x3",
		Bio:             "old bio",
		ProfileImageURL: "https://img.example.com/old.png",
		IsProfilePublic: true,
		IsImagePublic:   true,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	req := models.ProfileUpdateRequest{
		ClientID:         client.ID,
		RequestedChanges: datatypes.JSON([]byte(`{"bio":"new bio"}`)),
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	if err := uc.Execute(context.Background(), domain.KindProfileUpdate, req.ID, domain.ActionApprove, reviewerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var updated models.Client
	db.First(&updated, client.ID)
	if updated.Bio != "new bio" {
		t.Fatalf("bio not applied: %q", updated.Bio)
	}
	if updated.ProfileImageURL != client.ProfileImageURL || !updated.IsProfilePublic || !updated.IsImagePublic {
		t.Fatalf("untouched fields must survive a partial patch: %+v", updated)
	}
}

func TestProfileUpdateApprove_RejectsMalformedChangeSet(t *testing.T) {
	db := openTestDB(t)
	uc := newTransition(t, db, &recordingMailer{})

	client := models.Client{Name: "Ada", Email: "ada@example.com", ReferralCode: "REF-x4"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	req := models.ProfileUpdateRequest{
		ClientID:         client.ID,
		RequestedChanges: datatypes.JSON([]byte(`not json`)),
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed request: %v", err)
	}

	err := uc.Execute(context.Background(), domain.KindProfileUpdate, req.ID, domain.ActionApprove, reviewerID)
	if !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected validation error got %v", err)
	}

	var pending models.ProfileUpdateRequest
	db.First(&pending, req.ID)
	if pending.Status != string(domain.StatusPending) {
		t.Fatalf("a failed approval must leave the request PENDING, got %q", pending.Status)
	}
}

// mailedPassword pulls the plain credential out of a welcome mail body.
func mailedPassword(msg notify.Message) string {
	for _, line := range strings.Split(msg.Text, "\n") {
		if strings.HasPrefix(line, "Password: ") {
			return strings.TrimPrefix(line, "Password: ")
		}
	}
	return ""
}
