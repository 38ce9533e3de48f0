package handler

import (
	"testing"
	"time"

	"growguard/internal/domain/entity"
	"growguard/internal/domain/flow"

	"github.com/stretchr/testify/assert"
)

func TestFlowView_PendingVerification(t *testing.T) {
	var input entity.OTPInput
	input, _ = input.Set(0, "4")
	input, _ = input.Set(1, "2")

	state := flow.ProfileMobileChangePending{
		Verification: flow.Verification{
			Mobile:    "3111111111",
			Purpose:   flow.PurposeProfileMobileChange,
			Resending: true,
		},
		Input:  input,
		Notice: flow.OTPResentMessage,
	}

	view := flowView(state, 95*time.Second)

	assert.Equal(t, "ProfileMobileChangePending", view.State)
	assert.Equal(t, flow.PurposeProfileMobileChange, view.Purpose)
	assert.Equal(t, "+923111111111", view.Mobile)
	assert.Equal(t, []string{"4", "2", "", ""}, view.Digits)
	assert.False(t, view.CanVerify)
	assert.True(t, view.Resending)
	assert.Equal(t, "1:35", view.Countdown)
	assert.False(t, view.Expired)
	assert.Equal(t, flow.OTPResentMessage, view.Notice)
}

func TestFlowView_ExpiredCountdown(t *testing.T) {
	input, _ := entity.ParseOTP("1234")
	state := flow.OtpRequested{
		Verification: flow.Verification{Mobile: "3001234567", Purpose: flow.PurposeLogin},
		Input:        input,
	}

	view := flowView(state, 0)

	assert.True(t, view.CanVerify)
	assert.True(t, view.Expired)
	assert.Equal(t, "0:00", view.Countdown)
}

func TestFlowView_DetailsListsProvinces(t *testing.T) {
	state := flow.RegistrationDetailsEntered{
		Mobile: "3001234567",
		Err:    "Please select a province",
	}

	view := flowView(state, 0)

	assert.Equal(t, flow.PurposeRegistration, view.Purpose)
	assert.Equal(t, entity.Provinces, view.Provinces)
	assert.NotNil(t, view.Details)
	assert.Equal(t, "Please select a province", view.Err)
	assert.Empty(t, view.Countdown)
}

func TestMobileRoute(t *testing.T) {
	assert.Equal(t, entity.RouteRegister, mobileRoute(flow.PurposeRegistration))
	assert.Equal(t, entity.RouteLogin, mobileRoute(flow.PurposeLogin))
}
