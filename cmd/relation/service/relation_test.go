package service

import (
	"context"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/relation/dal/db"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	db.Init(testutil.NewDB(t))
}

func countSubscriptions(t *testing.T) int64 {
	var n int64
	require.NoError(t, db.DB.Model(&model.Subscription{}).Count(&n).Error)
	return n
}

func TestToggleSubscription(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	svc := NewRelationService(ctx)

	res, err := svc.ToggleSubscription(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, res.Subscribed)
	require.NotNil(t, res.Subscription)
	assert.Equal(t, alice.ID, res.Subscription.ChannelID)
	assert.EqualValues(t, 1, countSubscriptions(t))

	res, err = svc.ToggleSubscription(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, res.Subscribed)
	assert.Nil(t, res.Subscription)
	assert.Zero(t, countSubscriptions(t))
}

func TestToggleSubscriptionRejections(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	svc := NewRelationService(ctx)

	_, err := svc.ToggleSubscription(alice.ID, alice.ID)
	require.ErrorIs(t, err, errno.ParamErr)
	assert.Equal(t, "You cannot subscribe to your own channel", errno.ConvertErr(err).ErrMsg)
	assert.Zero(t, countSubscriptions(t))

	_, err = svc.ToggleSubscription(alice.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.ToggleSubscription(alice.ID, "nope")
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.ToggleSubscription("", alice.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
}

func TestSubscriptionLists(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	carol := testutil.CreateUser(t, db.DB, "carol")
	testutil.Subscribe(t, db.DB, bob, alice)
	testutil.Subscribe(t, db.DB, carol, alice)
	testutil.Subscribe(t, db.DB, bob, carol)
	svc := NewRelationService(ctx)

	subs, err := svc.ChannelSubscribers(alice.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, subs.TotalItems)
	names := []string{subs.Items[0].User.Username, subs.Items[1].User.Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)
	assert.Equal(t, "subscribers", subs.Labels.Docs)

	channels, err := svc.SubscribedChannels(bob.ID, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, channels.TotalItems)
	assert.Len(t, channels.Items, 1)
	assert.Equal(t, 2, channels.TotalPages)
	assert.True(t, channels.HasNextPage)

	_, err = svc.ChannelSubscribers("00000000-0000-0000-0000-000000000000", 1, 10)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
