package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sajilo-inventory/cart"
	"sajilo-inventory/models"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}))
	Init(database, cart.NewManager(), 5)
}

func postRegister(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	Register(c)
	return rec
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupAuthTest(t)

	first := postRegister(t, `{"username":"ramesh","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, first.Code)

	// The unique index, not a pre-check, rejects the second attempt.
	second := postRegister(t, `{"username":"ramesh","password":"other1"}`)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "already registered")

	var cnt int64
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "ramesh").Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setupAuthTest(t)

	rec := postRegister(t, `{"username":"ramesh","password":"s3cret","role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
