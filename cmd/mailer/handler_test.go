package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"MyTube.com/pkg/mq"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailHandlerSends(t *testing.T) {
	sender := &testutil.Notifier{}
	h := NewMailHandler(sender, time.Second)

	err := h.HandleEmailEvent(context.Background(), &mq.EmailEvent{
		EventID: "e1",
		To:      "a@example.com",
		Subject: "Your OTP",
		Body:    "123456",
	})
	require.NoError(t, err)
	msg, ok := sender.Last()
	require.True(t, ok)
	assert.Equal(t, testutil.Message{To: "a@example.com", Subject: "Your OTP", Body: "123456"}, msg)
}

func TestMailHandlerWrapsSendError(t *testing.T) {
	boom := errors.New("smtp down")
	h := NewMailHandler(&testutil.Notifier{Err: boom}, 0)

	err := h.HandleEmailEvent(context.Background(), &mq.EmailEvent{EventID: "e2", To: "b@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "e2")
}
