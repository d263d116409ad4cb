package cropcal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/localstore"
	"krishi/pkg/session"
)

func fiveCalendars() []entities.CropCalendar {
	return []entities.CropCalendar{
		{ID: "1", ProjectName: "Wheat", Status: entities.StatusPending},
		{ID: "2", ProjectName: "Rice", Status: entities.StatusPending},
		{ID: "3", ProjectName: "Mango", Status: entities.StatusCompleted},
		{ID: "4", ProjectName: "Tomato", Status: entities.StatusPending},
		{ID: "5", ProjectName: "Mustard", Status: entities.StatusCompleted},
	}
}

func newService(cals []entities.CropCalendar) (*Service, *api.Mock) {
	mock := api.NewMock()
	mock.Calendars = cals
	sessions := session.NewStore(localstore.NewMemory())
	sessions.Set(entities.User{Name: "Ravi", Role: entities.RoleFarmer, Token: "tok"})
	return New(mock, sessions), mock
}

func TestCompletedFilterKeepsOrder(t *testing.T) {
	svc, _ := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())

	got := svc.Calendars(FilterCompleted)
	require.Len(t, got, 2)
	require.Equal(t, "3", got[0].ID)
	require.Equal(t, "5", got[1].ID)

	require.Len(t, svc.Calendars(FilterActive), 3)
	require.Len(t, svc.Calendars(FilterAll), 5)
}

func TestStats(t *testing.T) {
	svc, _ := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())
	active, completed := svc.Stats()
	require.Equal(t, 3, active)
	require.Equal(t, 2, completed)
}

func TestDeleteIsImmediateAndLocalOnly(t *testing.T) {
	svc, mock := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())
	fetches := mock.CallCount("CropCalendars")

	require.NoError(t, svc.Delete("3"))
	got := svc.Calendars(FilterAll)
	require.Len(t, got, 4)
	for _, cal := range got {
		require.NotEqual(t, "3", cal.ID)
	}
	// gone on every subsequent read without a re-fetch
	require.Len(t, svc.Calendars(FilterAll), 4)
	require.Equal(t, fetches, mock.CallCount("CropCalendars"), "delete must not call the server")

	// a re-fetch brings the server copy back intact: delete is local-only
	require.NoError(t, svc.Refresh())
	require.Equal(t, calendarIDs(fiveCalendars()), calendarIDs(svc.Calendars(FilterAll)))
}

func TestDeleteLeavesClientDataUntouched(t *testing.T) {
	svc, mock := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())

	require.NoError(t, svc.Delete("3"))
	// the slice the client returned keeps every element in place
	require.Equal(t, calendarIDs(fiveCalendars()), calendarIDs(mock.Calendars))
}

func calendarIDs(cals []entities.CropCalendar) []string {
	ids := make([]string, len(cals))
	for i, cal := range cals {
		ids[i] = cal.ID
	}
	return ids
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())
	require.ErrorIs(t, svc.Delete("99"), ErrNotFound)
}

func TestRefreshReplacesHeldList(t *testing.T) {
	svc, mock := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())

	mock.Calendars = fiveCalendars()[:2]
	require.NoError(t, svc.Refresh())
	require.Len(t, svc.Calendars(FilterAll), 2)
}

func TestGetFallsBackToFetch(t *testing.T) {
	svc, mock := newService(fiveCalendars())
	// no Refresh yet: Get must fetch on its own
	cal, err := svc.Get("4")
	require.NoError(t, err)
	require.Equal(t, "Tomato", cal.ProjectName)
	require.Equal(t, 1, mock.CallCount("CropCalendars"))

	_, err = svc.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc, mock := newService(nil)
	err := svc.Create(entities.CropCalendar{FieldSize: -2})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe, "projectName")
	require.Contains(t, fe, "fieldSize")
	require.Zero(t, mock.CallCount("CreateCropCalendar"))

	err = svc.Create(entities.CropCalendar{
		ProjectName: "Wheat 2026", CropName: "Wheat", CropType: "Cereal",
		Season: "Rabi", Location: "Puri", FieldSize: 1.5, StartDate: "2026-11-01",
	})
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount("CreateCropCalendar"))
}

func TestExportXLSX(t *testing.T) {
	svc, _ := newService(fiveCalendars())
	require.NoError(t, svc.Refresh())

	path := filepath.Join(t.TempDir(), "calendars.xlsx")
	require.NoError(t, svc.ExportXLSX(path, FilterCompleted))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Crop Calendar")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 completed entries
	require.Equal(t, "Project", rows[0][0])
	require.Equal(t, "Mango", rows[1][0])
	require.Equal(t, "Mustard", rows[2][0])
}
