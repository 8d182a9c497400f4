package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	notFound := FromDB(gorm.ErrRecordNotFound, "user")
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.Equal(t, "user not found", notFound.Message)

	dup := FromDB(gorm.ErrDuplicatedKey, "like")
	assert.Equal(t, CodeConflict, dup.Code)

	fk := FromDB(gorm.ErrForeignKeyViolated, "comment")
	assert.Equal(t, CodeConflict, fk.Code)

	other := FromDB(errors.New("connection refused"), "post")
	assert.Equal(t, CodeInternal, other.Code)
	// The driver error stays wrapped for logging
	assert.ErrorContains(t, other.Err, "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("gone")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("dup")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad enum")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal("boom", errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestIsCode(t *testing.T) {
	err := FromDB(gorm.ErrRecordNotFound, "tag")
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(errors.New("plain"), CodeNotFound))
}
