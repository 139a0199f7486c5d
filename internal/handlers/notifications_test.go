package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSendInvitations(t *testing.T) {
	sender := &fakeSender{}
	h := NewNotificationsHandler(sender)

	c, rec := NewTestContext(http.MethodPost, "/send-email", map[string]interface{}{
		"emailObjects": []map[string]string{
			{"email": "a@x.com", "invitedBy": "Dana", "paper": "Deep Currents", "contributions": "Figures 2-4"},
			{"email": "b@y.com", "invitedBy": "Dana", "paper": "Deep Currents", "contributions": "Statistical review"},
		},
	})
	require.NoError(t, h.HandleSendInvitations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := DecodeJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "Invitations sent", body["message"])

	require.Len(t, sender.batches, 1, "the whole batch goes out in one call")
	require.Len(t, sender.batches[0], 2)
	assert.Equal(t, "a@x.com", sender.batches[0][0].Email)
	assert.Equal(t, "Dana", sender.batches[0][0].InvitedBy)
}

func TestHandleSendInvitations_EmptyList(t *testing.T) {
	sender := &fakeSender{}
	h := NewNotificationsHandler(sender)

	c, rec := NewTestContext(http.MethodPost, "/send-email", map[string]interface{}{
		"emailObjects": []map[string]string{},
	})
	require.NoError(t, h.HandleSendInvitations(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.batches, "nothing is submitted for an empty batch")
}

func TestHandleSendInvitations_ProviderError(t *testing.T) {
	h := NewNotificationsHandler(&fakeSender{err: errProvider})

	c, rec := NewTestContext(http.MethodPost, "/send-email", map[string]interface{}{
		"emailObjects": []map[string]string{
			{"email": "a@x.com", "invitedBy": "Dana", "paper": "Deep Currents", "contributions": "Figures"},
		},
	})
	require.NoError(t, h.HandleSendInvitations(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
