package telegram

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPermissions(t *testing.T) {
	t.Run("default grants every right", func(t *testing.T) {
		perms := reflect.ValueOf(*chatPermissions(platform.DefaultPermissions()))
		for i := 0; i < perms.NumField(); i++ {
			field := perms.Type().Field(i)
			if field.Type.Kind() != reflect.Bool {
				continue
			}
			assert.True(t, perms.Field(i).Bool(), field.Name)
		}
	})

	t.Run("muted revokes every right", func(t *testing.T) {
		assert.Equal(t, models.ChatPermissions{}, *chatPermissions(platform.Muted()))
	})
}

func TestAdministrators(t *testing.T) {
	members := []models.ChatMember{
		{Type: models.ChatMemberTypeAdministrator, Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 11}}},
		{Type: models.ChatMemberTypeOwner, Owner: &models.ChatMemberOwner{User: &models.User{ID: 10}}},
		{Type: models.ChatMemberTypeAdministrator, Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 12}}},
		{Type: models.ChatMemberTypeMember},
	}

	assert.Equal(t, platform.Administrators{OwnerID: 10, AdminIDs: []int64{11, 12}}, administrators(members))
	assert.Equal(t, platform.Administrators{}, administrators(nil))
}

func TestClientRequiresBot(t *testing.T) {
	client := NewClient(0)

	_, err := client.GetChatAdministrators(context.Background(), chatID)
	require.Error(t, err)
	assert.Error(t, client.SendMessage(context.Background(), chatID, "hi"))
}
