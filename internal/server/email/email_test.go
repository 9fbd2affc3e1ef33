package email

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestSendPasswordReset_TestMode(t *testing.T) {
	TestMode = true
	t.Cleanup(func() {
		TestMode = false
		TestDataSent = nil
	})

	err := SendPasswordReset("Jamie", "jamie@example.com", PasswordResetData{
		Link: "https://veridia.app/password-reset?token=abc",
	})
	assert.NilError(t, err)

	assert.Equal(t, len(TestDataSent), 1)
	assert.Equal(t, TestDataSent[0]["link"], "https://veridia.app/password-reset?token=abc")
}

func TestSendTemplate_NotConfigured(t *testing.T) {
	err := SendTemplate("", "jamie@example.com", EmailTemplatePasswordReset, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
