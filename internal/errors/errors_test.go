package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := NewCatalogError("fetch popular", cause)

	assert.Equal(t, "NETWORK_OR_STATUS: fetch popular (caused by: dial tcp: refused)", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "INVALID_CREDENTIALS: invalid credentials", NewInvalidCredentialsError().Error())
}

func TestIsTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("home: %w", NewStatusError("/movie/popular", 503))

	assert.True(t, IsType(err, ErrorTypeNetworkOrStatus))
	assert.False(t, IsType(err, ErrorTypeStorageFailure))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeNetworkOrStatus))
	assert.False(t, IsType(nil, ErrorTypeNetworkOrStatus))
}
