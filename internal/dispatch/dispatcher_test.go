package dispatch

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/print-sms-notifier/internal/mocks/dispatch"
)

func TestDispatch_SecondRecipientFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gw.EXPECT().Send("+15551234567", "+15550001111", "hello", "").Return(nil)
	gw.EXPECT().Send("+15559876543", "+15550001111", "hello", "").Return(errors.New("gateway rejected"))

	d := New(gw, "+15551234567,+15559876543", "+15550001111", "US")

	out := d.Dispatch("hello", "")

	assert.True(t, out.Attempted, "attempted even with a per-recipient failure")
	require.Len(t, out.Recipients, 2)
	assert.True(t, out.Recipients[0].Sent)
	assert.False(t, out.Recipients[1].Sent)
	assert.Contains(t, out.Recipients[1].Error, "gateway rejected")
	assert.Equal(t, 1, out.Failures())
}

func TestDispatch_AttemptsMatchNonEmptyEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gw.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(nil).Times(2)

	d := New(gw, " +15551234567, ,+15559876543,", "+15550001111", "US")

	out := d.Dispatch("hello", "")

	assert.True(t, out.Attempted)
	assert.Len(t, out.Recipients, 2)
}

func TestDispatch_NormalizesToE164(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gw.EXPECT().Send("+15551234567", "+15550001111", "hello", "").Return(nil)

	d := New(gw, "(555) 123-4567", "555-000-1111", "US")

	out := d.Dispatch("hello", "")

	require.Len(t, out.Recipients, 1)
	assert.Equal(t, "+15551234567", out.Recipients[0].Number)
}

func TestDispatch_MalformedRecipientFailsOnlyItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gw.EXPECT().Send("+15559876543", "+15550001111", "hello", "").Return(nil)

	d := New(gw, "not-a-number,+15559876543", "+15550001111", "US")

	out := d.Dispatch("hello", "")

	assert.True(t, out.Attempted)
	require.Len(t, out.Recipients, 2)
	assert.False(t, out.Recipients[0].Sent)
	assert.NotEmpty(t, out.Recipients[0].Error)
	assert.True(t, out.Recipients[1].Sent)
}

func TestDispatch_MediaAttachedToEveryRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gw.EXPECT().Send("+15551234567", "+15550001111", "hello", "https://img.example/x.jpg").Return(nil)
	gw.EXPECT().Send("+15559876543", "+15550001111", "hello", "https://img.example/x.jpg").Return(nil)

	d := New(gw, "+15551234567,+15559876543", "+15550001111", "US")

	out := d.Dispatch("hello", "https://img.example/x.jpg")

	assert.True(t, out.Attempted)
	assert.Equal(t, 0, out.Failures())
}

func TestDispatch_MediaFailureFallsBackToTextOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)
	gomock.InOrder(
		gw.EXPECT().Send("+15551234567", "+15550001111", "hello", "https://img.example/x.jpg").Return(errors.New("media fetch failed")),
		gw.EXPECT().Send("+15551234567", "+15550001111", "hello", "").Return(nil),
	)

	d := New(gw, "+15551234567", "+15550001111", "US")

	out := d.Dispatch("hello", "https://img.example/x.jpg")

	require.Len(t, out.Recipients, 1)
	assert.True(t, out.Recipients[0].Sent)
	assert.True(t, out.Recipients[0].MediaDropped)
}

func TestDispatch_InvalidSenderSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockmessageGateway(ctrl)

	d := New(gw, "+15551234567", "garbage", "US")

	out := d.Dispatch("hello", "")

	assert.False(t, out.Attempted)
	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.Recipients)
}
