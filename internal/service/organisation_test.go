package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/mocks"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/service"
)

func TestOrganisationCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.CreateOrganisationInput{
		Name:   "Acme",
		Domain: "acme.example.com",
	}

	t.Run("onboards pending then activates after provisioning", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		orgID := uuid.New()
		gomock.InOrder(
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, org *model.Organisation) error {
					assert.Equal(t, model.OrgStatusPending, org.Status)
					org.ID = orgID
					return nil
				}),

			provisioner.EXPECT().
				Provision(gomock.Any(), orgID.String()).
				Return(nil),

			repo.EXPECT().
				UpdateStatus(gomock.Any(), orgID, model.OrgStatusActive).
				Return(nil),
		)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, orgID, org.ID)
		assert.Equal(t, model.OrgStatusActive, org.Status)
	})

	t.Run("provisioning failure leaves the row at provisioning_failed", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		orgID := uuid.New()
		provisionErr := errors.New("connection refused")
		gomock.InOrder(
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, org *model.Organisation) error {
					org.ID = orgID
					return nil
				}),

			provisioner.EXPECT().
				Provision(gomock.Any(), orgID.String()).
				Return(provisionErr),

			repo.EXPECT().
				UpdateStatus(gomock.Any(), orgID, model.OrgStatusProvisioningFailed).
				Return(nil),
		)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Create(context.Background(), input)

		// The organisation row survives the failure so the caller can
		// distinguish "created but not provisioned" and retry.
		require.Error(t, err)
		assert.ErrorIs(t, err, provisionErr)
		require.NotNil(t, org)
		assert.Equal(t, model.OrgStatusProvisioningFailed, org.Status)
	})

	t.Run("duplicate domain is rejected", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrDuplicateDomain)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Create(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrDuplicateDomain)
		assert.Nil(t, org)
	})

	t.Run("invalid domain never reaches the store", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Create(context.Background(), service.CreateOrganisationInput{
			Name:   "Acme",
			Domain: "not a domain",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, org)
	})
}

func TestOrganisationProvisionRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	failed := &model.Organisation{
		ID:     orgID,
		Name:   "Acme",
		Domain: "acme.example.com",
		Status: model.OrgStatusProvisioningFailed,
	}

	t.Run("retry activates after a prior failure", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), orgID).Return(failed, nil),
			provisioner.EXPECT().Provision(gomock.Any(), orgID.String()).Return(nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), orgID, model.OrgStatusActive).Return(nil),
		)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Provision(context.Background(), orgID)

		require.NoError(t, err)
		assert.Equal(t, model.OrgStatusActive, org.Status)
	})

	t.Run("repeated failure keeps provisioning_failed", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), orgID).Return(failed, nil),
			provisioner.EXPECT().Provision(gomock.Any(), orgID.String()).
				Return(errors.New("still down")),
			repo.EXPECT().UpdateStatus(gomock.Any(), orgID, model.OrgStatusProvisioningFailed).
				Return(nil),
		)

		svc := service.NewOrganisationService(repo, provisioner, nil)
		org, err := svc.Provision(context.Background(), orgID)

		require.Error(t, err)
		assert.Equal(t, model.OrgStatusProvisioningFailed, org.Status)
	})
}

func TestOrganisationUpdateKeepsDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
	provisioner := mocks.NewMockTenantProvisioner(ctrl)

	orgID := uuid.New()
	existing := &model.Organisation{
		ID:     orgID,
		Name:   "Acme",
		Domain: "acme.example.com",
		Status: model.OrgStatusActive,
	}

	newName := "Acme Holdings"
	gomock.InOrder(
		repo.EXPECT().FindByID(gomock.Any(), orgID).Return(existing, nil),
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organisation) error {
				assert.Equal(t, newName, org.Name)
				assert.Equal(t, "acme.example.com", org.Domain)
				return nil
			}),
	)

	svc := service.NewOrganisationService(repo, provisioner, nil)
	org, err := svc.Update(context.Background(), orgID, service.UpdateOrganisationInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, org.Name)
}

func TestOrganisationListClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
	provisioner := mocks.NewMockTenantProvisioner(ctrl)

	repo.EXPECT().
		FindAllPaginated(gomock.Any(), 0, 25).
		Return([]*model.Organisation{}, int64(0), nil)

	svc := service.NewOrganisationService(repo, provisioner, nil)
	_, _, err := svc.List(context.Background(), -5, 10_000)
	assert.NoError(t, err)
}
