package api_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/localstore"
	"krishi/pkg/mockapi"
	"krishi/pkg/session"
)

func newStub(t *testing.T) (*mockapi.Server, api.Client) {
	t.Helper()
	stub := mockapi.New()
	ts := httptest.NewServer(stub.Handler())
	t.Cleanup(ts.Close)
	return stub, api.NewHTTP(ts.URL, 5*time.Second)
}

func TestFarmerLoginQuotedTokenReachesHeaderStripped(t *testing.T) {
	stub, client := newStub(t)
	stub.Farmers["9998887770"] = entities.User{
		Name:  "Ravi",
		Role:  entities.RoleFarmer,
		Token: `"abc123"`, // server hands the token out JSON-quoted
	}

	u, err := client.FarmerLogin("9998887770", "secret1")
	require.NoError(t, err)
	require.Equal(t, "Ravi", u.Name)

	store := sessionStore(t, u)
	require.NoError(t, client.SubmitSmartIrrigation(store.Token(), entities.SmartIrrigationRequest{
		FarmLocation:   "Puri",
		IrrigationType: "DRIP",
		AreaInHectares: 2,
		CropType:       "Cereal",
		Query:          "setup",
	}))
	require.Equal(t, "abc123", stub.LastAccessToken)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	_, client := newStub(t)
	_, err := client.FarmerLogin("0000000000", "nope")
	var srvErr *api.ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "Invalid credentials", srvErr.Message)
}

func TestSubmitFailureKeepsServerMessage(t *testing.T) {
	stub, client := newStub(t)
	stub.FailStatus = 422
	stub.FailMessage = "area exceeds farm records"

	err := client.SubmitDroneSpraying("tok", entities.DroneSprayingRequest{
		FarmLocation:   "Puri",
		CropType:       "Cereal",
		AreaInHectares: 2,
		SprayDate:      "2030-01-01",
		Query:          "spray",
	})
	var srvErr *api.ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "area exceeds farm records", srvErr.Message)
	require.Equal(t, 422, srvErr.Status)
}

func TestCropCalendarsDecode(t *testing.T) {
	stub, client := newStub(t)
	stub.Calendars = []entities.CropCalendar{
		{ID: "1", ProjectName: "Wheat 2026", Status: entities.StatusPending},
		{ID: "2", ProjectName: "Rice Kharif", Status: entities.StatusCompleted},
	}

	out, err := client.CropCalendars("tok")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Wheat 2026", out[0].ProjectName)
	require.Equal(t, "tok", stub.LastAccessToken)
}

func TestRegisterCreatesProfile(t *testing.T) {
	_, client := newStub(t)
	u, err := client.FarmerRegister(api.RegisterRequest{
		Name:        "Sita",
		PhoneNumber: "9990001111",
		Password:    "longenough",
		Role:        entities.RoleFarmer,
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleFarmer, u.Role)
	require.NotEmpty(t, u.Token)
}

func sessionStore(t *testing.T, u entities.User) *session.Store {
	t.Helper()
	s := session.NewStore(localstore.NewMemory())
	s.Set(u)
	return s
}
