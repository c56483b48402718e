package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/adapters/database/postgres"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func prepare(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(postgres.Migrations...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type fixture struct {
	db *gorm.DB

	users               *postgres.UserStorage
	clubs               *postgres.ClubStorage
	events              *postgres.EventStorage
	owners              *postgres.ClubOwnerStorage
	collaborators       *postgres.ClubCollaboratorStorage
	ownerInvites        *postgres.OwnerInviteStorage
	collaboratorInvites *postgres.CollaboratorInviteStorage

	access *AccessService
}

func newFixture(t *testing.T) *fixture {
	db := prepare(t)

	f := &fixture{
		db:                  db,
		users:               postgres.NewUserStorage(db),
		clubs:               postgres.NewClubStorage(db),
		events:              postgres.NewEventStorage(db),
		owners:              postgres.NewClubOwnerStorage(db),
		collaborators:       postgres.NewClubCollaboratorStorage(db),
		ownerInvites:        postgres.NewOwnerInviteStorage(db),
		collaboratorInvites: postgres.NewCollaboratorInviteStorage(db),
	}
	f.access = NewAccessService(f.users, f.owners, f.collaborators)
	return f
}

func (f *fixture) user(t *testing.T, email string) *entity.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), &entity.User{Email: email, Name: "test user"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (f *fixture) club(t *testing.T, name string) *entity.Club {
	t.Helper()
	club, err := f.clubs.Create(context.Background(), &entity.Club{
		Name:        name,
		Campus:      entity.CampusStGeorge,
		Description: "a club",
	})
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	return club
}

func (f *fixture) event(t *testing.T, clubID string, start time.Time) *entity.Event {
	t.Helper()
	event, err := f.events.Create(context.Background(), &entity.Event{
		ClubID:    clubID,
		Name:      "event " + uuid.NewString()[:8],
		Venue:     "somewhere",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

func (f *fixture) makeOwner(t *testing.T, userID, clubID string) {
	t.Helper()
	if _, err := f.owners.Create(context.Background(), &entity.ClubOwner{UserID: userID, ClubID: clubID}); err != nil {
		t.Fatalf("create owner row: %v", err)
	}
}

func (f *fixture) makeCollaborator(t *testing.T, userID, clubID string) {
	t.Helper()
	if _, err := f.collaborators.Create(context.Background(), &entity.ClubCollaborator{UserID: userID, ClubID: clubID}); err != nil {
		t.Fatalf("create collaborator row: %v", err)
	}
}

// fakeUploader records uploads and hands the key back unchanged.
type fakeUploader struct {
	keys []string
	err  error
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.keys = append(u.keys, key)
	return key, nil
}

// fakeMailer counts dispatched invite mails.
type fakeMailer struct {
	ownerInvites        int
	collaboratorInvites int
	loginCodes          []string
}

func (m *fakeMailer) SendOwnerInvite(string, string, string)        { m.ownerInvites++ }
func (m *fakeMailer) SendCollaboratorInvite(string, string, string) { m.collaboratorInvites++ }
func (m *fakeMailer) SendLoginCode(_ string, code string)           { m.loginCodes = append(m.loginCodes, code) }
