package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nebulahq/tessera/internal/config"
	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/email"
	"github.com/nebulahq/tessera/internal/mocks"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/service"
)

func invitationConfig() *config.Config {
	return &config.Config{
		InvitationTTL: 7 * 24 * time.Hour,
		BaseURL:       "https://app.example.com",
	}
}

func TestInvitationInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organisation{
		ID:     uuid.New(),
		Name:   "Acme",
		Domain: "acme.example.com",
		Status: model.OrgStatusActive,
	}
	inviter := uuid.New()

	t.Run("stores pending invitation, audits, and mails the link", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		invID := uuid.New()
		gomock.InOrder(
			invitations.EXPECT().
				Create(gomock.Any(), sess, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ interface{}, inv *model.UserInvitation) error {
					assert.Equal(t, model.InvitationPending, inv.Status)
					assert.NotEmpty(t, inv.InvitationToken)
					assert.True(t, inv.ExpiresAt.After(time.Now()))
					inv.ID = invID
					return nil
				}),

			invitations.EXPECT().
				AppendAudit(gomock.Any(), sess, invID, "invited", gomock.Any()).
				Return(nil),

			sender.EXPECT().
				SendEmail(gomock.Any()).
				DoAndReturn(func(data email.EmailData) error {
					assert.Equal(t, "new@acme.example.com", data.To)
					assert.Equal(t, "user_invitation", data.TemplateName)
					return nil
				}),
		)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		inv, err := svc.Invite(context.Background(), sess, org, service.InviteUserInput{
			Email:           "new@acme.example.com",
			InvitedByUserID: inviter,
		})

		require.NoError(t, err)
		assert.Equal(t, invID, inv.ID)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		_, err := svc.Invite(context.Background(), sess, org, service.InviteUserInput{
			Email:           "nope",
			InvitedByUserID: inviter,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestInvitationAccept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("pending invitation creates the invited user", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		inv := &model.UserInvitation{
			ID:        uuid.New(),
			Email:     "new@acme.example.com",
			Status:    model.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		created := &model.TenantUser{ID: uuid.New(), Email: inv.Email}

		gomock.InOrder(
			invitations.EXPECT().FindByToken(gomock.Any(), sess, "tok").Return(inv, nil),
			users.EXPECT().Create(gomock.Any(), sess, inv.Email).Return(created, nil),
			invitations.EXPECT().MarkAccepted(gomock.Any(), sess, inv.ID, created.ID).Return(nil),
			invitations.EXPECT().
				AppendAudit(gomock.Any(), sess, inv.ID, "accepted", gomock.Any()).
				Return(nil),
		)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		user, err := svc.Accept(context.Background(), sess, service.AcceptInvitationInput{Token: "tok"})

		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("already accepted invitation is rejected", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		inv := &model.UserInvitation{
			ID:        uuid.New(),
			Email:     "new@acme.example.com",
			Status:    model.InvitationAccepted,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		invitations.EXPECT().FindByToken(gomock.Any(), sess, "tok").Return(inv, nil)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		_, err := svc.Accept(context.Background(), sess, service.AcceptInvitationInput{Token: "tok"})
		assert.ErrorIs(t, err, domain.ErrInvitationAccepted)
	})

	t.Run("expired invitation is rejected", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		inv := &model.UserInvitation{
			ID:        uuid.New(),
			Email:     "new@acme.example.com",
			Status:    model.InvitationPending,
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		invitations.EXPECT().FindByToken(gomock.Any(), sess, "tok").Return(inv, nil)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		_, err := svc.Accept(context.Background(), sess, service.AcceptInvitationInput{Token: "tok"})
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		invitations := mocks.NewMockInvitationRepositoryIface(ctrl)
		users := mocks.NewMockTenantUserRepositoryIface(ctrl)
		sender := mocks.NewMockSender(ctrl)
		sess := mocks.NewMockSession(ctrl)

		invitations.EXPECT().FindByToken(gomock.Any(), sess, "ghost").
			Return(nil, domain.ErrInvitationNotFound)

		svc := service.NewInvitationService(invitations, users, sender, invitationConfig(), nil)
		_, err := svc.Accept(context.Background(), sess, service.AcceptInvitationInput{Token: "ghost"})
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})
}
