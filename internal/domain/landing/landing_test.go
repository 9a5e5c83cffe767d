package landing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLanding(t *testing.T) {
	t.Run("creates landing in DRAFT status", func(t *testing.T) {
		l, err := NewLanding(7, "avtoservis.volzhck.ru", "avtoservis", 1)
		require.NoError(t, err)
		require.NotNil(t, l)

		assert.Equal(t, int64(7), l.OrganizationID)
		assert.Equal(t, "avtoservis.volzhck.ru", l.Domain)
		assert.Equal(t, "avtoservis", l.Subdomain)
		assert.Equal(t, int64(1), l.TemplateID)
		assert.Equal(t, LandingStatusDraft, l.Status)
		assert.False(t, l.SSLEnabled)
		assert.Nil(t, l.PublishedAt)
	})

	t.Run("lowercases domain and subdomain", func(t *testing.T) {
		l, err := NewLanding(7, "Avtoservis.Volzhck.RU", " AVTOSERVIS ", 1)
		require.NoError(t, err)
		assert.Equal(t, "avtoservis.volzhck.ru", l.Domain)
		assert.Equal(t, "avtoservis", l.Subdomain)
	})

	t.Run("fails with empty domain", func(t *testing.T) {
		_, err := NewLanding(7, "  ", "avtoservis", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain cannot be empty")
	})

	t.Run("fails with empty subdomain", func(t *testing.T) {
		_, err := NewLanding(7, "avtoservis.volzhck.ru", "", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subdomain cannot be empty")
	})

	t.Run("fails with overlong subdomain", func(t *testing.T) {
		_, err := NewLanding(7, "avtoservis.volzhck.ru", strings.Repeat("a", 101), 1)
		require.Error(t, err)
	})
}

func TestLanding_Publish(t *testing.T) {
	l, err := NewLanding(7, "avtoservis.volzhck.ru", "avtoservis", 1)
	require.NoError(t, err)
	assert.False(t, l.IsActive())

	l.Publish()

	assert.Equal(t, LandingStatusActive, l.Status)
	assert.True(t, l.IsActive())
	require.NotNil(t, l.PublishedAt)
	assert.Equal(t, *l.PublishedAt, l.UpdatedAt)
}

func TestNewOrganization(t *testing.T) {
	t.Run("creates ACTIVE organization", func(t *testing.T) {
		org, err := NewOrganization(" Автосервис Мотор ", "Ремонт")
		require.NoError(t, err)

		assert.Equal(t, "Автосервис Мотор", org.Name)
		assert.Equal(t, "Ремонт", org.Category)
		assert.Equal(t, OrganizationStatusActive, org.Status)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewOrganization("   ", "Ремонт")
		require.Error(t, err)
	})
}

func TestOrganization_HasTelegramBot(t *testing.T) {
	org, err := NewOrganization("Автосервис Мотор", "Ремонт")
	require.NoError(t, err)
	assert.False(t, org.HasTelegramBot())

	org.TelegramBotToken = "123456:token"
	assert.False(t, org.HasTelegramBot(), "chat ID still missing")

	org.TelegramChatID = "-100200300"
	assert.True(t, org.HasTelegramBot())
}
