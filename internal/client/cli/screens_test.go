package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/client/view"
)

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "bob", Email: "bob@x.com", Address: "B St", Role: models.RoleUser},
		{ID: "2", Name: "Alice", Email: "alice@x.com", Address: "A St", Role: models.RoleAdmin},
	}
}

func sampleStores() []models.Store {
	return []models.Store{
		{ID: "s1", Name: "Corner Shop", AverageRating: 4.5, Ratings: []models.Rating{
			{UserName: "bob", UserEmail: "bob@x.com", Rating: 5},
			{UserName: "Alice", UserEmail: "alice@x.com", Rating: 4},
		}},
		{ID: "s2", Name: "Bakery", AverageRating: 3, Ratings: []models.Rating{
			{UserName: "Zoe", UserEmail: "z@x.com", Rating: 3},
		}},
	}
}

func TestUsers_RequiresAdminRole(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleUser)

	require.NoError(t, a.Users(context.Background()))
	require.Zero(t, fc.ListUsersCalls)
	require.Contains(t, out.String(), "available to ADMIN accounts only")
}

func TestUsers_RequiresLogin(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, fc)

	require.NoError(t, a.Users(context.Background()))
	require.Zero(t, fc.ListUsersCalls)
	require.Contains(t, out.String(), "Please login first.")
}

func TestUsers_RendersAndSorts(t *testing.T) {
	fc := &fakeAPI{UsersRet: sampleUsers()}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Users(context.Background()))
	require.Equal(t, 1, fc.ListUsersCalls)

	out.Reset()
	require.NoError(t, a.Sort(context.Background(), []string{"name"}))
	rendered := out.String()
	require.Contains(t, rendered, "Name (asc)")
	// Case-insensitive ascending puts Alice before bob.
	require.Less(t, strings.Index(rendered, "Alice"), strings.Index(rendered, "bob"))
	// Sorting is client-side only; no re-fetch happened.
	require.Equal(t, 1, fc.ListUsersCalls)

	out.Reset()
	require.NoError(t, a.Sort(context.Background(), []string{"name"}))
	rendered = out.String()
	require.Contains(t, rendered, "Name (desc)")
	require.Less(t, strings.Index(rendered, "bob"), strings.Index(rendered, "Alice"))
}

func TestSort_UnknownKeyPrintsUsage(t *testing.T) {
	fc := &fakeAPI{UsersRet: sampleUsers()}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Sort(context.Background(), []string{"rating"}))
	require.Contains(t, out.String(), "Usage: sort <name|email|address|role>")
}

func TestFilter_NormalizesAndRefetches(t *testing.T) {
	fc := &fakeAPI{UsersRet: sampleUsers()}
	a, _ := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Filter(context.Background(), []string{"role=owner", "name= "}))
	require.Equal(t, map[string]string{"role": "OWNER"}, fc.LastUserFilters)

	require.NoError(t, a.Filter(context.Background(), []string{"clear"}))
	require.Empty(t, fc.LastUserFilters)
}

func TestFilter_BadArgPrintsUsage(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Filter(context.Background(), []string{"rolowner"}))
	require.Zero(t, fc.ListUsersCalls)
	require.Contains(t, out.String(), "Usage: filter")
}

func TestAddUser_ShortNameBlocksSubmission(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)
	stubInputs(t, []string{"Al", "new@x.com", "1 Side St", "USER"}, []string{"Password1!"})

	require.NoError(t, a.AddUser(context.Background()))
	require.Zero(t, fc.CreateUserCalls)
	require.Zero(t, fc.ListUsersCalls)
	require.Contains(t, out.String(), "Name must be between 3 and 60 characters.")
}

func TestAddUser_SubmitsAndRefreshes(t *testing.T) {
	fc := &fakeAPI{UsersRet: sampleUsers()}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)
	stubInputs(t, []string{"New Person", "new@x.com", "1 Side St", "OWNER"}, []string{"Password1!"})

	require.NoError(t, a.AddUser(context.Background()))
	require.Equal(t, 1, fc.CreateUserCalls)
	require.Equal(t, models.RoleOwner, fc.LastCreateUser.Role)
	require.Equal(t, 1, fc.ListUsersCalls)
	require.Contains(t, out.String(), "User added successfully!")
}

func TestStores_RendersPerStoreSortIndependently(t *testing.T) {
	fc := &fakeAPI{StoresRet: sampleStores()}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleOwner)

	require.NoError(t, a.Stores(context.Background()))
	require.Contains(t, out.String(), "Corner Shop")
	require.Contains(t, out.String(), "avg 4.50")

	out.Reset()
	require.NoError(t, a.Sort(context.Background(), []string{"s1", "rating"}))
	rendered := out.String()
	// s1 ratings sorted ascending by value: Alice (4) before bob (5).
	require.Less(t, strings.Index(rendered, "Alice"), strings.Index(rendered, "bob"))

	// Only s1 carries sort state; s2 is untouched.
	_, ok := a.stores.Sorts().State("s1")
	require.True(t, ok)
	_, ok = a.stores.Sorts().State("s2")
	require.False(t, ok)
}

func TestStores_EmptyListShowsNeutralMessage(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleOwner)

	require.NoError(t, a.Stores(context.Background()))
	require.Contains(t, out.String(), "You haven't added any stores yet.")
}

func TestDashboard_RendersCounters(t *testing.T) {
	fc := &fakeAPI{}
	fc.DashboardRet.Users.Total = 12
	fc.DashboardRet.Stores = 3
	fc.DashboardRet.Ratings.Total = 40
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Dashboard(context.Background()))
	rendered := out.String()
	require.Contains(t, rendered, "Total Users")
	require.Contains(t, rendered, "12")
	require.Contains(t, rendered, "40")
}

func TestDashboard_FailureFallsBackToZeros(t *testing.T) {
	fc := &fakeAPI{DashboardErr: errors.New("boom")}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Dashboard(context.Background()))
	rendered := out.String()
	require.Contains(t, rendered, "Failed to fetch dashboard summary.")
	require.Contains(t, rendered, "Total Users")
	require.Contains(t, rendered, "0")
}

func TestUpdatePassword_PrintsServerMessage(t *testing.T) {
	fc := &fakeAPI{UpdatePasswordMsg: "Password updated"}
	a, out := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleUser)
	stubInputs(t, nil, []string{"OldPass1!", "NewPass1!"})

	require.NoError(t, a.UpdatePassword(context.Background()))
	require.Contains(t, out.String(), "Password updated")
}

func TestLogout_ResetsCollections(t *testing.T) {
	fc := &fakeAPI{UsersRet: sampleUsers()}
	a, _ := newTestApp(t, fc)
	loginAs(t, a, fc, models.RoleAdmin)

	require.NoError(t, a.Users(context.Background()))
	require.Len(t, a.users.Rows(usersGroup), 2)

	require.NoError(t, a.Logout(context.Background()))
	require.Empty(t, a.users.Rows(usersGroup))
	require.Equal(t, view.Idle, a.users.Phase())
}
