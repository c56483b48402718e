package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
)

func newClubService(f *fixture, uploader *fakeUploader) *ClubService {
	return NewClubService(f.clubs, f.ownerInvites, f.events, f.owners, f.collaborators, f.access, uploader)
}

func TestClubCreateRequiresOwnerInvite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	input := dto.ClubCreate{
		Name:        "Chess Club",
		Campus:      entity.CampusStGeorge,
		Description: "we play chess",
	}

	_, err := svc.Create(ctx, input, "a@x.com")
	assert.ErrorIs(t, err, errorz.ErrUnauthorized)

	_, err = f.ownerInvites.Create(ctx, &entity.OwnerInvite{Name: "A", Email: "a@x.com", ClubName: "Chess Club"})
	require.NoError(t, err)

	club, err := svc.Create(ctx, input, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, club.ID)
	assert.Equal(t, entity.CampusStGeorge, club.Campus)
}

func TestClubCreateDoesNotConsumeInvite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	_, err := f.ownerInvites.Create(ctx, &entity.OwnerInvite{Email: "a@x.com", ClubName: "Chess Club"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.ClubCreate{Name: "Chess Club", Campus: entity.CampusStGeorge, Description: "d"}, "a@x.com")
	require.NoError(t, err)

	invites, err := f.ownerInvites.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, invites, 1)

	// The surviving invite still authorizes another creation.
	_, err = svc.Create(ctx, dto.ClubCreate{Name: "Second Club", Campus: entity.CampusMississauga, Description: "d"}, "a@x.com")
	assert.NoError(t, err)
}

func TestClubCreateUploadsProfileImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uploader := &fakeUploader{}
	svc := newClubService(f, uploader)

	_, err := f.ownerInvites.Create(ctx, &entity.OwnerInvite{Email: "a@x.com"})
	require.NoError(t, err)

	club, err := svc.Create(ctx, dto.ClubCreate{
		Name:         "Chess Club",
		Campus:       entity.CampusScarborough,
		Description:  "d",
		ProfileImage: []byte("png-bytes"),
		ImageName:    "logo.png",
		ContentType:  "image/png",
	}, "a@x.com")
	require.NoError(t, err)

	require.Len(t, uploader.keys, 1)
	assert.Equal(t, uploader.keys[0], club.ProfileImage)
}

func TestClubEditPartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	user := f.user(t, "owner@x.com")
	club := f.club(t, "Chess Club")
	f.makeOwner(t, user.ID, club.ID)

	newName := "Chess & Go Club"
	err := svc.Edit(ctx, club.ID, dto.ClubUpdate{Name: &newName}, user.Email)
	require.NoError(t, err)

	got, err := svc.Get(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess & Go Club", got.Name)
	// Fields that were not supplied keep their stored values.
	assert.Equal(t, entity.CampusStGeorge, got.Campus)
	assert.Equal(t, "a club", got.Description)
}

func TestClubEditUnauthorized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	f.user(t, "stranger@x.com")
	club := f.club(t, "Chess Club")

	name := "Hijacked"
	err := svc.Edit(ctx, club.ID, dto.ClubUpdate{Name: &name}, "stranger@x.com")
	assert.ErrorIs(t, err, errorz.ErrUnauthorized)
}

func TestClubGetMissing(t *testing.T) {
	f := newFixture(t)
	svc := newClubService(f, &fakeUploader{})

	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestClubActiveInactivePartition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	club := f.club(t, "Chess Club")
	now := time.Now()

	soon := f.event(t, club.ID, now.Add(1*time.Hour))
	later := f.event(t, club.ID, now.Add(48*time.Hour))
	recent := f.event(t, club.ID, now.Add(-1*time.Hour))
	old := f.event(t, club.ID, now.Add(-72*time.Hour))

	active, err := svc.GetActiveEvents(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Upcoming events come soonest first.
	assert.Equal(t, soon.ID, active[0].ID)
	assert.Equal(t, later.ID, active[1].ID)

	inactive, err := svc.GetInActiveEvents(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, inactive, 2)
	// Past events come most recent first.
	assert.Equal(t, recent.ID, inactive[0].ID)
	assert.Equal(t, old.ID, inactive[1].ID)
}

func TestClubMemberListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newClubService(f, &fakeUploader{})

	owner := f.user(t, "owner@x.com")
	collaborator := f.user(t, "collab@x.com")
	club := f.club(t, "Chess Club")
	f.makeOwner(t, owner.ID, club.ID)
	f.makeCollaborator(t, collaborator.ID, club.ID)

	owners, err := svc.GetOwners(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, owner.Email, owners[0].Email)

	collaborators, err := svc.GetCollaborators(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	assert.Equal(t, collaborator.Email, collaborators[0].Email)
}
