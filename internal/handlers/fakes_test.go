package handlers

import (
	"context"
	"errors"

	stripego "github.com/stripe/stripe-go/v80"

	"github.com/rayyaandev/Pipeline-Server/internal/email"
	stripeclient "github.com/rayyaandev/Pipeline-Server/internal/stripe"
)

var errProvider = errors.New("provider unavailable")

// fakeStripe satisfies BillingService, CouponService, and CustomerDeleter.
type fakeStripe struct {
	coupons []*stripego.Coupon
	listErr error

	createdDomain []stripeclient.DomainCouponParams
	createdEmail  []stripeclient.EmailCouponParams
	createErr     error

	deletedCoupons  []string
	deleteCouponErr error

	customer    *stripego.Customer
	customerErr error

	deletedCustomers  []string
	deleteCustomerErr error

	status    *stripeclient.SubscriptionStatus
	statusErr error

	sessionSecret string
	sessionErr    error

	checkoutSession *stripego.CheckoutSession
	checkoutErr     error
	checkoutCoupons []string
}

func (f *fakeStripe) CreateCustomer(_ context.Context, email, authID string) (*stripego.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	if f.customer != nil {
		return f.customer, nil
	}
	return &stripego.Customer{ID: "cus_fake", Email: email}, nil
}

func (f *fakeStripe) DeleteCustomer(_ context.Context, customerID string) error {
	if f.deleteCustomerErr != nil {
		return f.deleteCustomerErr
	}
	f.deletedCustomers = append(f.deletedCustomers, customerID)
	return nil
}

func (f *fakeStripe) GetSubscriptionStatus(context.Context, string) (*stripeclient.SubscriptionStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.status != nil {
		return f.status, nil
	}
	return &stripeclient.SubscriptionStatus{}, nil
}

func (f *fakeStripe) CreatePricingTableSession(context.Context, string) (string, error) {
	if f.sessionErr != nil {
		return "", f.sessionErr
	}
	return f.sessionSecret, nil
}

func (f *fakeStripe) CreateCheckoutSession(_ context.Context, _, couponID string) (*stripego.CheckoutSession, error) {
	f.checkoutCoupons = append(f.checkoutCoupons, couponID)
	if f.checkoutErr != nil {
		return nil, f.checkoutErr
	}
	if f.checkoutSession != nil {
		return f.checkoutSession, nil
	}
	return &stripego.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_fake"}, nil
}

func (f *fakeStripe) ListCoupons(context.Context) ([]*stripego.Coupon, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.coupons, nil
}

func (f *fakeStripe) CreateDomainCoupon(_ context.Context, p stripeclient.DomainCouponParams) (*stripego.Coupon, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdDomain = append(f.createdDomain, p)
	return &stripego.Coupon{
		ID:             "co_domain_fake",
		Name:           p.Name,
		PercentOff:     p.DiscountPercent,
		MaxRedemptions: p.MaxSeats,
		Metadata:       map[string]string{stripeclient.MetadataAllowedDomain: p.Domain},
	}, nil
}

func (f *fakeStripe) CreateEmailCoupon(_ context.Context, p stripeclient.EmailCouponParams) (*stripego.Coupon, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdEmail = append(f.createdEmail, p)
	return &stripego.Coupon{
		ID:             "co_email_fake",
		Name:           p.Name,
		PercentOff:     p.DiscountPercent,
		MaxRedemptions: 1,
		Metadata:       map[string]string{stripeclient.MetadataAllowedEmail: p.Email},
	}, nil
}

func (f *fakeStripe) DeleteCoupon(_ context.Context, couponID string) error {
	if f.deleteCouponErr != nil {
		return f.deleteCouponErr
	}
	f.deletedCoupons = append(f.deletedCoupons, couponID)
	return nil
}

// fakeSender satisfies InvitationSender.
type fakeSender struct {
	batches [][]email.Invitation
	err     error
}

func (f *fakeSender) SendInvitations(_ context.Context, invitations []email.Invitation) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, invitations)
	return nil
}

// fakeIdentity satisfies UserDeleter.
type fakeIdentity struct {
	deleted []string
	err     error
}

func (f *fakeIdentity) DeleteUser(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID)
	return nil
}
