package services_test

import (
	"log"
	"os"
	"testing"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/stretchr/testify/assert"
)

// TestMain is used to set up the test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func testAdmins() []models.User {
	return []models.User{
		{ID: "admin1", Email: "admin@electro.com", Password: "admin123", Role: models.RoleAdmin, Name: "Admin User"},
	}
}

func newAuthServiceForTest() (*services.AuthService, *repositories.MemoryStaffRepository, *recordingNotifier) {
	staffRepo := repositories.NewMemoryStaffRepository()
	notifier := &recordingNotifier{}
	return services.NewAuthService(staffRepo, notifier, testAdmins()), staffRepo, notifier
}

func TestAuthService_AdminLogin(t *testing.T) {
	authService, _, notifier := newAuthServiceForTest()

	ok := authService.Login("admin@electro.com", "admin123")
	assert.True(t, ok)

	user := authService.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "admin@electro.com", user.Email)
	assert.Empty(t, notifier.all())
}

func TestAuthService_AdminLoginWrongPassword(t *testing.T) {
	authService, _, notifier := newAuthServiceForTest()

	ok := authService.Login("admin@electro.com", "wrong")
	assert.False(t, ok)
	assert.Nil(t, authService.CurrentUser())

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Login Failed", entries[0].Title)
	assert.Equal(t, models.NotificationError, entries[0].Type)
}

func TestAuthService_FailedLoginLeavesSessionUnchanged(t *testing.T) {
	authService, _, _ := newAuthServiceForTest()

	assert.True(t, authService.Login("admin@electro.com", "admin123"))
	assert.False(t, authService.Login("admin@electro.com", "wrong"))

	// previous identity survives the failed attempt
	user := authService.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "admin1", user.ID)
}

func TestAuthService_StaffLoginResolvedAgainstStaffList(t *testing.T) {
	authService, staffRepo, _ := newAuthServiceForTest()

	staff := models.Staff{Name: "Staff User", Email: "staff@electro.com", Phone: "555-0101", Password: "staff123"}
	assert.NoError(t, staffRepo.Create(&staff))

	ok := authService.Login("staff@electro.com", "staff123")
	assert.True(t, ok)

	user := authService.CurrentUser()
	assert.NotNil(t, user)
	// staff records carry no role; logins through the staff list are always staff
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Equal(t, staff.ID, user.ID)
	assert.Equal(t, "Staff User", user.Name)
}

func TestAuthService_StaffLoginWrongPassword(t *testing.T) {
	authService, staffRepo, notifier := newAuthServiceForTest()

	staff := models.Staff{Name: "Staff User", Email: "staff@electro.com", Password: "staff123"}
	assert.NoError(t, staffRepo.Create(&staff))

	assert.False(t, authService.Login("staff@electro.com", "nope"))
	assert.Nil(t, authService.CurrentUser())
	assert.Len(t, notifier.all(), 1)
}

func TestAuthService_Logout(t *testing.T) {
	authService, _, _ := newAuthServiceForTest()

	assert.True(t, authService.Login("admin@electro.com", "admin123"))
	assert.NotNil(t, authService.CurrentUser())

	authService.Logout()
	assert.Nil(t, authService.CurrentUser())

	// logging out twice is harmless
	authService.Logout()
	assert.Nil(t, authService.CurrentUser())
}
