package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDeleteUser(t *testing.T) {
	identity := &fakeIdentity{}
	h := NewUsersHandler(identity, &fakeStripe{})

	c, rec := NewTestContext(http.MethodPost, "/delete-user", map[string]string{"userUid": "user_abc"})
	require.NoError(t, h.HandleDeleteUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user_abc"}, identity.deleted)
}

func TestHandleDeleteUser_MissingID(t *testing.T) {
	identity := &fakeIdentity{}
	h := NewUsersHandler(identity, &fakeStripe{})

	c, rec := NewTestContext(http.MethodPost, "/delete-user", map[string]string{})
	require.NoError(t, h.HandleDeleteUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, identity.deleted)
}

func TestHandleDeleteUser_ProviderError(t *testing.T) {
	h := NewUsersHandler(&fakeIdentity{err: errProvider}, &fakeStripe{})

	c, rec := NewTestContext(http.MethodPost, "/delete-user", map[string]string{"userUid": "user_abc"})
	require.NoError(t, h.HandleDeleteUser(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleDeleteStripeCustomer(t *testing.T) {
	fake := &fakeStripe{}
	h := NewUsersHandler(&fakeIdentity{}, fake)

	c, rec := NewTestContext(http.MethodPost, "/delete-stripe-customer", map[string]string{"customerId": "cus_123"})
	require.NoError(t, h.HandleDeleteStripeCustomer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cus_123"}, fake.deletedCustomers)
}

func TestHandleDeleteStripeCustomer_ProviderError(t *testing.T) {
	h := NewUsersHandler(&fakeIdentity{}, &fakeStripe{deleteCustomerErr: errProvider})

	c, rec := NewTestContext(http.MethodPost, "/delete-stripe-customer", map[string]string{"customerId": "cus_123"})
	require.NoError(t, h.HandleDeleteStripeCustomer(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
