package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinks_ValueAndScan(t *testing.T) {
	links := Links{"https://a.example", "https://b.example"}

	v, err := links.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["https://a.example","https://b.example"]`, v)

	var scanned Links
	assert.NoError(t, scanned.Scan([]byte(v.(string))))
	assert.Equal(t, links, scanned)

	var fromString Links
	assert.NoError(t, fromString.Scan(v))
	assert.Equal(t, links, fromString)
}

func TestLinks_Nil(t *testing.T) {
	var links Links
	v, err := links.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)

	scanned := Links{"x"}
	assert.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestLinks_ScanUnsupported(t *testing.T) {
	var links Links
	assert.Error(t, links.Scan(42))
}

func TestIsPrivilegedRole(t *testing.T) {
	assert.False(t, IsPrivilegedRole(RoleAppUser))
	assert.False(t, IsPrivilegedRole(""))
	assert.True(t, IsPrivilegedRole(RoleAdmin))
	assert.True(t, IsPrivilegedRole(RoleSuperAdmin))
}

func TestIsValidMediaStatus(t *testing.T) {
	for _, s := range []int{MediaHidden, MediaApproved, MediaPending} {
		assert.True(t, IsValidMediaStatus(s))
	}
	assert.False(t, IsValidMediaStatus(3))
	assert.False(t, IsValidMediaStatus(-1))
}
