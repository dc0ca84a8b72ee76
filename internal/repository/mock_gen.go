// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./organisation.go -destination=../mocks/mock_organisation_repository.go -package=mocks OrganisationRepositoryIface
//go:generate mockgen -source=./system_admin.go -destination=../mocks/mock_system_admin_repository.go -package=mocks SystemAdminRepositoryIface
//go:generate mockgen -source=./tenant_user.go -destination=../mocks/mock_tenant_user_repository.go -package=mocks TenantUserRepositoryIface
//go:generate mockgen -source=./magic_link.go -destination=../mocks/mock_magic_link_repository.go -package=mocks MagicLinkRepositoryIface
//go:generate mockgen -source=./invitation.go -destination=../mocks/mock_invitation_repository.go -package=mocks InvitationRepositoryIface
