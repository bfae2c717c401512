package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"creatorhub-backend/testutils"
	"creatorhub-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Setenv("JWT_SECRET", "test-secret")

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("jane@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1 (.+) LIMIT \$2`).
		WithArgs("janedoe", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("44444444-4444-4444-4444-444444444444"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	resp := postJSON(r, "/register", map[string]string{
		"username": "janedoe",
		"email":    "Jane@Example.com",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)
	assert.Equal(t, "User registered successfully", respBody.Message)

	data := respBody.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	// email is normalized to lowercase before storage
	assert.Equal(t, "jane@example.com", user["email"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("jane@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow("u1", "jane@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	resp := postJSON(r, "/register", map[string]string{
		"username": "janedoe",
		"email":    "jane@example.com",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.False(t, respBody.Success)
	assert.Equal(t, "Email already registered", respBody.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("jane@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1 (.+) LIMIT \$2`).
		WithArgs("janedoe", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("u1", "janedoe"))

	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	resp := postJSON(r, "/register", map[string]string{
		"username": "janedoe",
		"email":    "jane@example.com",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Username already taken", respBody.Message)
}

func TestRegister_MissingEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	resp := postJSON(r, "/register", map[string]string{
		"username": "janedoe",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody.Message, "Email")
}

func TestRegister_ShortPassword(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", Register)

	resp := postJSON(r, "/register", map[string]string{
		"username": "janedoe",
		"email":    "jane@example.com",
		"password": "123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("jane@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow("u1", "janedoe", "jane@example.com", string(hash)))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp := postJSON(r, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody.Success)
	data := respBody.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("jane@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow("u1", "jane@example.com", string(hash)))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp := postJSON(r, "/login", map[string]string{
		"email":    "jane@example.com",
		"password": "WrongPassword1",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid email or password", respBody.Message)
}

// An unknown email answers with the same message as a wrong password.
func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1 (.+) LIMIT \$2`).
		WithArgs("nobody@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp := postJSON(r, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Password123",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid email or password", respBody.Message)
}

func TestLogout_NotImplemented(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/logout", Logout)

	req, _ := http.NewRequest(http.MethodPost, "/logout", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotImplemented, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.False(t, respBody.Success)
}
