package pages

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkpage-app/internal/domain/pages"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteUsernameError_TakenIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeUsernameError(c, pages.ErrUsernameTaken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "taken")
}

func TestWriteUsernameError_WrappedTakenIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeUsernameError(c, fmt.Errorf("checking availability: %w", pages.ErrUsernameTaken))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWriteUsernameError_DBFailureIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeUsernameError(c, errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
