package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"krishi/database"
	"krishi/entities"
	"krishi/pkg/localstore"
)

func TestSetThenFreshLoadRoundTrips(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	storage := localstore.New(db)

	u := entities.User{
		ID:          "u1",
		Name:        "Ravi",
		PhoneNumber: "9998887770",
		Role:        entities.RoleFarmer,
		Token:       "tok-1",
		Location:    "Bhubaneswar, India",
	}
	NewStore(storage).Set(u)

	// fresh store over the same persisted state, as on cold start
	fresh := NewStore(storage)
	fresh.Load()
	got, ok := fresh.Current()
	require.True(t, ok)
	require.Equal(t, u, got)
}

func TestResetThenLoadYieldsNoSession(t *testing.T) {
	storage := localstore.NewMemory()
	s := NewStore(storage)
	s.Set(entities.User{Name: "Ravi", Role: entities.RoleFarmer, Token: "t"})
	s.SaveLocation("Cuttack, India")

	s.Reset()

	fresh := NewStore(storage)
	fresh.Load()
	_, ok := fresh.Current()
	require.False(t, ok)
	_, found, err := storage.Get("location")
	require.NoError(t, err)
	require.False(t, found, "Reset must clear the auxiliary location key too")
}

func TestUpdateMergesAndPersists(t *testing.T) {
	storage := localstore.NewMemory()
	s := NewStore(storage)
	s.Set(entities.User{Name: "Ravi", Role: entities.RoleFarmer, Token: "t"})

	loc := "Puri, India"
	s.Update(Patch{Location: &loc})

	got, _ := s.Current()
	require.Equal(t, "Puri, India", got.Location)
	require.Equal(t, "Ravi", got.Name)

	fresh := NewStore(storage)
	fresh.Load()
	persisted, ok := fresh.Current()
	require.True(t, ok)
	require.Equal(t, "Puri, India", persisted.Location)
}

func TestUpdateWithoutSessionIsNoOp(t *testing.T) {
	storage := localstore.NewMemory()
	s := NewStore(storage)
	name := "Ghost"
	s.Update(Patch{Name: &name})
	_, ok := s.Current()
	require.False(t, ok)
	_, found, _ := storage.Get("userData")
	require.False(t, found)
}

func TestLoadSurvivesCorruptStoredSession(t *testing.T) {
	storage := localstore.NewMemory()
	require.NoError(t, storage.Set("userData", "{not json"))
	s := NewStore(storage)
	s.Load() // must not panic or error out
	_, ok := s.Current()
	require.False(t, ok)
}

func TestTokenStripsEmbeddedQuotes(t *testing.T) {
	s := NewStore(localstore.NewMemory())
	s.Set(entities.User{Name: "Ravi", Role: entities.RoleFarmer, Token: `"abc123"`})
	require.Equal(t, "abc123", s.Token())
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	info, ok := InspectToken(`"` + raw + `"`)
	require.True(t, ok)
	require.Equal(t, "u1", info.Subject)
	require.Equal(t, exp.Unix(), info.ExpiresAt.Unix())

	_, ok = InspectToken("not-a-jwt")
	require.False(t, ok)
}
