package services_test

import (
	"testing"

	"taskvista/backend/internal/database"
	"taskvista/backend/internal/services"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTeamService(t *testing.T) (*gorm.DB, services.TeamService) {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	return db, services.NewTeamService()
}

func TestCreateAndListTeams(t *testing.T) {
	db, svc := setupTeamService(t)

	team, err := svc.CreateTeam(db, "Platform", "Core infrastructure group")
	require.NoError(t, err)
	assert.Equal(t, "Platform", team.Name)

	teams, err := svc.GetTeams(db)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestCreateTeamRequiresName(t *testing.T) {
	db, svc := setupTeamService(t)

	_, err := svc.CreateTeam(db, "", "no name")
	assert.Error(t, err)
}

func TestAddMembersSkipsDuplicates(t *testing.T) {
	db, svc := setupTeamService(t)

	team, err := svc.CreateTeam(db, "Design", "")
	require.NoError(t, err)

	userA := uuid.Must(uuid.NewV4())
	userB := uuid.Must(uuid.NewV4())

	updated, err := svc.AddMembers(db, team.ID, []uuid.UUID{userA, userB})
	require.NoError(t, err)
	assert.Len(t, updated.Members, 2)

	updated, err = svc.AddMembers(db, team.ID, []uuid.UUID{userA})
	require.NoError(t, err)
	assert.Len(t, updated.Members, 2, "re-adding an existing member should be a no-op")
}

func TestRemoveMember(t *testing.T) {
	db, svc := setupTeamService(t)

	team, err := svc.CreateTeam(db, "QA", "")
	require.NoError(t, err)

	userID := uuid.Must(uuid.NewV4())
	_, err = svc.AddMembers(db, team.ID, []uuid.UUID{userID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(db, team.ID, userID))

	got, err := svc.GetTeamByID(db, team.ID)
	require.NoError(t, err)
	assert.False(t, got.HasMember(userID))
}

func TestDeleteTeamRemovesMembers(t *testing.T) {
	db, svc := setupTeamService(t)

	team, err := svc.CreateTeam(db, "Ops", "")
	require.NoError(t, err)

	_, err = svc.AddMembers(db, team.ID, []uuid.UUID{uuid.Must(uuid.NewV4())})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(db, team.ID))

	_, err = svc.GetTeamByID(db, team.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUnknownTeam(t *testing.T) {
	db, svc := setupTeamService(t)

	err := svc.DeleteTeam(db, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
