package auth

import (
	"testing"
	"time"

	"Backend-Slotify/src/models"
	"Backend-Slotify/src/utils"
	"Backend-Slotify/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLogin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Login Tests")
	defer suiteResult.PrintSummary()

	// Test successful login
	t.Run("TestSuccessfulLogin", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Login")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Successful Login",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Successful Login", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		expectedUser := &models.User{
			Email: "host@slotify.app",
			Role:  models.RoleUser,
		}
		expectedToken := "jwt-token-123"

		mockService.On("Login", "host@slotify.app", "password123").Return(expectedUser, expectedToken, nil)

		user, token, err := mockService.Login("host@slotify.app", "password123")

		assert.NoError(t, err)
		assert.Equal(t, expectedUser, user)
		assert.Equal(t, expectedToken, token)
		mockService.AssertExpectations(t)
	})

	// Test login with invalid credentials
	t.Run("TestLoginInvalidCredentials", func(t *testing.T) {
		timer := test.NewTestTimer("Login Invalid Credentials")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Invalid Credentials",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Invalid Credentials", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		mockService.On("Login", "invalid@slotify.app", "wrongpassword").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("invalid@slotify.app", "wrongpassword")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	// Test login with empty email
	t.Run("TestLoginEmptyEmail", func(t *testing.T) {
		timer := test.NewTestTimer("Login Empty Email")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Empty Email",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Empty Email", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		mockService.On("Login", "", "password123").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("", "password123")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	// Test login with empty password
	t.Run("TestLoginEmptyPassword", func(t *testing.T) {
		timer := test.NewTestTimer("Login Empty Password")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Empty Password",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Empty Password", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		mockService.On("Login", "host@slotify.app", "").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("host@slotify.app", "")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	// Test login with admin user
	t.Run("TestLoginAdminUser", func(t *testing.T) {
		timer := test.NewTestTimer("Login Admin User")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Admin User",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Admin User", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		expectedAdminUser := &models.User{
			Email: "admin@slotify.app",
			Role:  models.RoleAdmin,
		}
		expectedAdminToken := "admin-jwt-token-456"

		mockService.On("Login", "admin@slotify.app", "adminpass123").Return(expectedAdminUser, expectedAdminToken, nil)

		user, token, err := mockService.Login("admin@slotify.app", "adminpass123")

		assert.NoError(t, err)
		assert.Equal(t, expectedAdminUser, user)
		assert.Equal(t, expectedAdminToken, token)
		assert.Equal(t, models.RoleAdmin, user.Role)
		mockService.AssertExpectations(t)
	})

	// Test that issued tokens parse back with the same identity
	t.Run("TestIssuedTokenParsesBack", func(t *testing.T) {
		timer := test.NewTestTimer("Issued Token Parses Back")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Issued Token Parses Back",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Issued Token Parses Back", duration, 50*time.Millisecond)
		}()

		token, err := utils.GenerateJWT("64b0c1d2e3f4a5b6c7d8e9f0", "host@slotify.app", models.RoleUser)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "64b0c1d2e3f4a5b6c7d8e9f0", claims.UserID)
		assert.Equal(t, "host@slotify.app", claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
	})

	// Test login request validation rules
	t.Run("TestLoginRequestValidation", func(t *testing.T) {
		timer := test.NewTestTimer("Login Request Validation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Request Validation",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Login Request Validation", duration, 50*time.Millisecond)
		}()

		valid := models.LoginRequest{Email: "host@slotify.app", Password: "password123"}
		assert.NotEmpty(t, valid.Email)
		assert.NotEmpty(t, valid.Password)

		invalidEmails := []string{"", "invalid-email", "@slotify.app", "user@"}
		for _, email := range invalidEmails {
			req := models.LoginRequest{Email: email, Password: "password123"}
			if email == "" {
				assert.Empty(t, req.Email)
			} else {
				assert.NotContains(t, []string{"host@slotify.app", "admin@slotify.app"}, req.Email)
			}
		}
	})
}
