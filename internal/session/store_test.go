package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairydesk/internal/api"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	require.NoError(t, err)
	return store, path
}

func TestStore_StartsUnauthenticated(t *testing.T) {
	store, _ := tempStore(t)
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	assert.Nil(t, store.ActiveFarm())
}

func TestStore_LoginRoundTrip(t *testing.T) {
	store, path := tempStore(t)

	user := api.User{ID: 1, Name: "Ada", Email: "ada@farm.test", Role: api.RoleFarmOwner}
	require.NoError(t, store.SaveLogin("abc", user))

	assert.True(t, store.Authenticated())
	assert.Equal(t, "abc", store.Token())

	// A fresh store reading the same file sees the complete snapshot.
	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Authenticated())
	assert.Equal(t, "abc", reloaded.Token())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, api.RoleFarmOwner, reloaded.User().Role)
}

func TestStore_ActiveFarmSurvivesReload(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.SaveLogin("abc", api.User{ID: 1, Role: api.RoleFarmOwner}))
	require.NoError(t, store.SetActiveFarm(&api.Farm{ID: 3, Name: "Meadowbrook"}))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ActiveFarm())
	assert.Equal(t, int64(3), reloaded.ActiveFarm().ID)
}

func TestStore_LoginResetsActiveFarm(t *testing.T) {
	store, _ := tempStore(t)
	require.NoError(t, store.SaveLogin("abc", api.User{ID: 1, Role: api.RoleFarmOwner}))
	require.NoError(t, store.SetActiveFarm(&api.Farm{ID: 3}))

	// A new identity must not inherit the previous selection.
	require.NoError(t, store.SaveLogin("xyz", api.User{ID: 2, Role: api.RoleWorker}))
	assert.Nil(t, store.ActiveFarm())
}

func TestStore_ClearWipesEverything(t *testing.T) {
	store, path := tempStore(t)
	require.NoError(t, store.SaveLogin("abc", api.User{ID: 1, Role: api.RoleBuyer}))
	require.NoError(t, store.Clear())

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "session file should be removed on logout")

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.False(t, reloaded.Authenticated())
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := Open(path)
	require.NoError(t, err)
	assert.False(t, store.Authenticated())
}
