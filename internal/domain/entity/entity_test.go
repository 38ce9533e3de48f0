package entity

import (
	"testing"

	"growguard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMobile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "3001234567", want: "3001234567"},
		{in: "300-123 4567", want: "3001234567"},
		{in: "30012345678999", want: "3001234567"},
		{in: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeMobile(tt.in))
		})
	}
}

func TestIsCompleteMobile(t *testing.T) {
	assert.True(t, IsCompleteMobile("3001234567"))
	assert.False(t, IsCompleteMobile("300123456"))
	assert.False(t, IsCompleteMobile("30012345a7"))
	assert.False(t, IsCompleteMobile(""))
}

func TestOTPInput_SetRejectsNonDigitAndKeepsPriorValue(t *testing.T) {
	var in OTPInput
	in, ok := in.Set(0, "7")
	require.True(t, ok)

	for _, bad := range []string{"a", " ", "12", "٣", "-"} {
		got, ok := in.Set(0, bad)
		assert.False(t, ok, bad)
		assert.Equal(t, in, got, bad)
	}

	_, ok = in.Set(OTPLength, "1")
	assert.False(t, ok)
}

func TestOTPInput_CompleteOnlyWhenAllSlotsFilled(t *testing.T) {
	var in OTPInput
	for i, d := range []string{"1", "2", "3"} {
		in, _ = in.Set(i, d)
		assert.False(t, in.Complete())
	}

	in, _ = in.Set(3, "4")
	assert.True(t, in.Complete())
	assert.Equal(t, "1234", in.Code())

	in, _ = in.Set(1, "")
	assert.False(t, in.Complete())
	assert.Equal(t, []string{"1", "", "3", "4"}, in.Slots())
}

func TestParseOTP(t *testing.T) {
	in, ok := ParseOTP("1234")
	require.True(t, ok)
	assert.Equal(t, "1234", in.Code())

	_, ok = ParseOTP("12a4")
	assert.False(t, ok)
	_, ok = ParseOTP("123")
	assert.False(t, ok)
}

func TestReport_AssignIDIsImmutable(t *testing.T) {
	r := &Report{DiseaseName: "Tomato Late Blight"}
	assert.False(t, r.Durable())

	require.NoError(t, r.AssignID("12"))
	assert.True(t, r.Durable())
	require.NoError(t, r.AssignID("12"))

	err := r.AssignID("13")
	assert.True(t, errors.Is(err, ErrReportIDAssigned))
	assert.Equal(t, "12", r.ID)

	assert.True(t, errors.Is((&Report{}).AssignID(""), ErrEmptyReportID))
}

func TestReport_DiseaseKeyAndFilename(t *testing.T) {
	r := &Report{DiseaseName: "Tomato Late Blight", Image: "/uploads/abc_leaf.jpg"}
	assert.Equal(t, "tomato_late_blight", r.DiseaseKey())
	assert.Equal(t, "abc_leaf.jpg", r.ImageFilename())
	assert.Equal(t, "plain.jpg", ImageFilename("plain.jpg"))
}

func TestUser_LocationText(t *testing.T) {
	u := &User{Name: "Ali", Surname: "Khan", Province: "Punjab", Village: "Chak 5"}
	assert.Equal(t, "Punjab, Chak 5", u.LocationText())
	assert.Equal(t, "Ali Khan", u.FullName())

	var nilUser *User
	assert.Equal(t, "", nilUser.LocationText())
}

func TestLanguage_Toggle(t *testing.T) {
	assert.Equal(t, LanguageUrdu, LanguageEnglish.Toggle())
	assert.Equal(t, LanguageEnglish, LanguageUrdu.Toggle())
	assert.False(t, Language("fr").IsValid())
}
