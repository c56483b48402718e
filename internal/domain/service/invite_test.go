package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
)

func TestSendOwnerInvite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewOwnerInviteService(f.ownerInvites, mailer)

	invite, err := svc.Send(ctx, "Alice", "alice@x.com", "Chess Club")
	require.NoError(t, err)
	assert.NotEmpty(t, invite.ID)
	assert.Equal(t, 1, mailer.ownerInvites)

	invites, err := f.ownerInvites.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "Chess Club", invites[0].ClubName)
}

func TestSendCollaboratorInviteRequiresAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewCollaboratorInviteService(f.collaboratorInvites, f.clubs, f.access, mailer)

	owner := f.user(t, "owner@x.com")
	stranger := f.user(t, "stranger@x.com")
	club := f.club(t, "Chess Club")
	f.makeOwner(t, owner.ID, club.ID)

	_, err := svc.Send(ctx, "Bob", "bob@x.com", club.ID, stranger.Email)
	assert.ErrorIs(t, err, errorz.ErrUnauthorized)
	assert.Zero(t, mailer.collaboratorInvites)

	invite, err := svc.Send(ctx, "Bob", "bob@x.com", club.ID, owner.Email)
	require.NoError(t, err)
	assert.Equal(t, club.ID, invite.ClubID)
	assert.Equal(t, 1, mailer.collaboratorInvites)
}
